package usecase

import (
	"context"
	"fmt"
	"strings"

	"palantir/internal/domain"
	apperrors "palantir/internal/errors"
)

type FindOrdersUseCase struct {
	orders OrderRepository
}

func NewFindOrdersUseCase(orders OrderRepository) *FindOrdersUseCase {
	return &FindOrdersUseCase{orders: orders}
}

// FindByID answers NotFound for orders of other stores.
func (uc *FindOrdersUseCase) FindByID(ctx context.Context, storeID, orderID string) (*domain.Order, error) {
	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.StoreID() != storeID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with id %s not found", orderID))
	}
	return order, nil
}

func (uc *FindOrdersUseCase) List(ctx context.Context, storeID, status string) ([]*domain.Order, error) {
	var filter *domain.OrderStatus
	if status = strings.ToUpper(strings.TrimSpace(status)); status != "" {
		s := domain.OrderStatus(status)
		if !s.IsValid() {
			return nil, apperrors.NewInvalidArgument("status", fmt.Sprintf("order status %q is invalid", status))
		}
		filter = &s
	}
	return uc.orders.ListByStore(ctx, storeID, filter)
}
