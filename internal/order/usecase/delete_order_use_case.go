package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"palantir/internal/domain"
	apperrors "palantir/internal/errors"
)

type DeleteOrderUseCase struct {
	orders   OrderRepository
	payments PaymentFinder
	logger   *zap.Logger
}

func NewDeleteOrderUseCase(orders OrderRepository, payments PaymentFinder, logger *zap.Logger) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{orders: orders, payments: payments, logger: logger}
}

func (uc *DeleteOrderUseCase) Delete(ctx context.Context, storeID, orderID string) error {
	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.StoreID() != storeID {
		return apperrors.NewInvalidArgument("storeId", "order does not belong to this store")
	}
	if order.Status() != domain.OrderStatusPending {
		return apperrors.NewInvalidStateError(fmt.Sprintf("cannot delete an order in %s status", order.Status()))
	}
	if err := ensureNoOpenPayment(ctx, uc.payments, orderID); err != nil {
		return err
	}

	if err := uc.orders.Delete(ctx, orderID); err != nil {
		return err
	}

	uc.logger.Info("order deleted", zap.String("orderId", orderID))
	return nil
}

// ensureNoOpenPayment blocks deleting an order whose latest payment is still
// PENDING or already APPROVED. A later provider callback would otherwise
// resolve a payment for an order that no longer exists.
func ensureNoOpenPayment(ctx context.Context, payments PaymentFinder, orderID string) error {
	payment, err := payments.FindByOrderID(ctx, orderID)
	if _, notFound := apperrors.IsNotFoundError(err); notFound {
		return nil
	}
	if err != nil {
		return err
	}
	if payment.Status() == domain.PaymentStatusRefused {
		return nil
	}
	return apperrors.NewConflictError(fmt.Sprintf("order %s has a %s payment and cannot be deleted", orderID, payment.Status()))
}
