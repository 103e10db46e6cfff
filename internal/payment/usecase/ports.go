package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"palantir/internal/domain"
	"palantir/internal/infrastructure/paymentprovider"
)

type PaymentRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	FindByExternalID(ctx context.Context, externalID string) (*domain.Payment, error)
	Save(ctx context.Context, payment *domain.Payment) error
}

type OrderFinder interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
}

// OrderStatusUpdater moves the paid order forward. It is the order module's
// status use case.
type OrderStatusUpdater interface {
	SetToReceived(ctx context.Context, orderID string) (*domain.Order, error)
	SetToCanceled(ctx context.Context, orderID string) (*domain.Order, error)
}

type QrCodeProvider interface {
	CreateQrCode(ctx context.Context, orderID string, total decimal.Decimal, title string) (*paymentprovider.QrCode, error)
	Platform() string
}
