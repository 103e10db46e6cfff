package usecase

import (
	"context"

	"go.uber.org/zap"

	"palantir/internal/domain"
	apperrors "palantir/internal/errors"
)

type RemoveOrderItemUseCase struct {
	orders   OrderRepository
	payments PaymentFinder
	logger   *zap.Logger
}

func NewRemoveOrderItemUseCase(orders OrderRepository, payments PaymentFinder, logger *zap.Logger) *RemoveOrderItemUseCase {
	return &RemoveOrderItemUseCase{orders: orders, payments: payments, logger: logger}
}

// Remove drops the item from a PENDING order. Removing the last item deletes
// the order, reported by a nil order and deleted=true.
func (uc *RemoveOrderItemUseCase) Remove(ctx context.Context, storeID, orderID, itemID string) (*domain.Order, bool, error) {
	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, false, err
	}
	if order.StoreID() != storeID {
		return nil, false, apperrors.NewInvalidArgument("storeId", "order does not belong to this store")
	}

	err = order.RemoveItem(itemID)
	if _, lastItem := apperrors.IsValidationError(err); lastItem && len(order.Items()) == 1 {
		if err := ensureNoOpenPayment(ctx, uc.payments, orderID); err != nil {
			return nil, false, err
		}
		if err := uc.orders.Delete(ctx, orderID); err != nil {
			return nil, false, err
		}
		uc.logger.Info("last item removed, order deleted", zap.String("orderId", orderID), zap.String("itemId", itemID))
		return nil, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	if err := uc.orders.Save(ctx, order); err != nil {
		return nil, false, err
	}

	uc.logger.Info("order item removed", zap.String("orderId", orderID), zap.String("itemId", itemID))
	return order, false, nil
}
