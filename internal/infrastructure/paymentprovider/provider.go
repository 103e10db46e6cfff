package paymentprovider

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"palantir/internal/config"
	"palantir/internal/domain"
)

// QrCode is the provider's answer to a charge request.
type QrCode struct {
	ID     string
	QrCode string
}

type Provider interface {
	CreateQrCode(ctx context.Context, orderID string, total decimal.Decimal, title string) (*QrCode, error)
	FindTotemByID(ctx context.Context, totemID string) (*domain.Totem, error)
	Platform() string
}

// New picks the implementation named by cfg.Provider.
func New(cfg config.PaymentConfig, logger *zap.Logger) (Provider, error) {
	switch cfg.Provider {
	case "fake", "":
		return NewFake(cfg.Totems), nil
	case "http":
		return NewHTTPClient(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown payment provider %q", cfg.Provider)
	}
}
