package paymentprovider

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"palantir/internal/domain"
	"palantir/internal/errors"
)

const fakePlatform = "fake"

// Fake answers locally. Totems come from configuration as totemId -> storeId.
type Fake struct {
	totems map[string]string
}

func NewFake(totems map[string]string) *Fake {
	if totems == nil {
		totems = map[string]string{}
	}
	return &Fake{totems: totems}
}

func (f *Fake) CreateQrCode(ctx context.Context, orderID string, total decimal.Decimal, title string) (*QrCode, error) {
	id := uuid.NewString()
	return &QrCode{
		ID:     id,
		QrCode: fmt.Sprintf("fakeqr|%s|%s|%s", id, orderID, total.StringFixed(2)),
	}, nil
}

func (f *Fake) FindTotemByID(ctx context.Context, totemID string) (*domain.Totem, error) {
	storeID, ok := f.totems[totemID]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("totem with id %s not found", totemID))
	}
	return &domain.Totem{ID: totemID, StoreID: storeID, Name: totemID}, nil
}

func (f *Fake) Platform() string {
	return fakePlatform
}
