package usecase

import (
	"context"

	"go.uber.org/zap"

	"palantir/internal/domain"
	apperrors "palantir/internal/errors"
)

type LinkCustomerUseCase struct {
	orders    OrderRepository
	customers CustomerFinder
	logger    *zap.Logger
}

func NewLinkCustomerUseCase(orders OrderRepository, customers CustomerFinder, logger *zap.Logger) *LinkCustomerUseCase {
	return &LinkCustomerUseCase{orders: orders, customers: customers, logger: logger}
}

func (uc *LinkCustomerUseCase) Link(ctx context.Context, storeID, orderID, customerID string) (*domain.Order, error) {
	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.StoreID() != storeID {
		return nil, apperrors.NewInvalidArgument("storeId", "order does not belong to this store")
	}

	customer, err := uc.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := order.AssociateCustomer(customer.ID); err != nil {
		return nil, err
	}
	if err := uc.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	uc.logger.Info("customer linked to order", zap.String("orderId", orderID), zap.String("customerId", customer.ID))
	return order, nil
}
