package usecase

import (
	"context"

	"palantir/internal/domain"
)

type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	ListByStore(ctx context.Context, storeID string, status *domain.OrderStatus) ([]*domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id string) error
}

type ProductCatalog interface {
	GetProductsByIDsAndStore(ctx context.Context, ids []string, storeID string) (found []domain.Product, notFoundIDs []string, err error)
}

type TotemFinder interface {
	FindTotemByID(ctx context.Context, totemID string) (*domain.Totem, error)
}

type CustomerFinder interface {
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
}

type PaymentFinder interface {
	FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
}

type NotificationSender interface {
	Send(ctx context.Context, channel domain.Channel, destination, message string) (*domain.Notification, error)
}

type StoreConfigFinder interface {
	FindOrDefault(ctx context.Context, storeID string) (domain.StoreConfig, error)
}

type TransitionRecorder interface {
	OrderTransitioned(status string)
}
