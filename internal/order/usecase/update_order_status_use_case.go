package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"palantir/internal/domain"
	apperrors "palantir/internal/errors"
)

type Notifier interface {
	Notify(ctx context.Context, order *domain.Order)
}

type UpdateOrderStatusUseCase struct {
	orders   OrderRepository
	payments PaymentFinder
	notifier Notifier
	recorder TransitionRecorder
	logger   *zap.Logger
}

func NewUpdateOrderStatusUseCase(
	orders OrderRepository,
	payments PaymentFinder,
	notifier Notifier,
	recorder TransitionRecorder,
	logger *zap.Logger,
) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{
		orders:   orders,
		payments: payments,
		notifier: notifier,
		recorder: recorder,
		logger:   logger,
	}
}

// UpdateStatus is the store-facing entry point. RECEIVED still requires an
// approved payment.
func (uc *UpdateOrderStatusUseCase) UpdateStatus(ctx context.Context, storeID, orderID, status string) (*domain.Order, error) {
	target := domain.OrderStatus(strings.ToUpper(strings.TrimSpace(status)))

	var apply func(ctx context.Context, order *domain.Order) error
	switch target {
	case domain.OrderStatusReceived:
		apply = uc.receive
	case domain.OrderStatusInProgress:
		apply = func(_ context.Context, o *domain.Order) error { return o.SetToInProgress() }
	case domain.OrderStatusReady:
		apply = func(_ context.Context, o *domain.Order) error { return o.SetToReady() }
	case domain.OrderStatusFinished:
		apply = func(_ context.Context, o *domain.Order) error { return o.SetToFinished() }
	case domain.OrderStatusCanceled:
		apply = func(_ context.Context, o *domain.Order) error { return o.SetToCanceled() }
	default:
		return nil, apperrors.NewInvalidArgument("status", fmt.Sprintf("cannot move an order to status %q", status))
	}

	return uc.update(ctx, &storeID, orderID, apply)
}

func (uc *UpdateOrderStatusUseCase) SetToReceived(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.update(ctx, nil, orderID, uc.receive)
}

func (uc *UpdateOrderStatusUseCase) SetToCanceled(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.update(ctx, nil, orderID, func(_ context.Context, o *domain.Order) error { return o.SetToCanceled() })
}

// receive re-reads the order's payment instead of trusting the caller.
func (uc *UpdateOrderStatusUseCase) receive(ctx context.Context, order *domain.Order) error {
	payment, err := uc.payments.FindByOrderID(ctx, order.ID())
	if err != nil {
		return err
	}
	if !payment.IsApproved() {
		return apperrors.NewConflictError(fmt.Sprintf("payment for order %s is %s, not APPROVED", order.ID(), payment.Status()))
	}
	return order.SetToReceived()
}

func (uc *UpdateOrderStatusUseCase) update(
	ctx context.Context,
	storeID *string,
	orderID string,
	apply func(ctx context.Context, order *domain.Order) error,
) (*domain.Order, error) {
	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if storeID != nil && order.StoreID() != *storeID {
		return nil, apperrors.NewInvalidArgument("storeId", "order does not belong to this store")
	}

	previous := order.Status()
	if err := apply(ctx, order); err != nil {
		return nil, err
	}
	if err := uc.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	uc.logger.Info("order status changed",
		zap.String("orderId", orderID),
		zap.String("from", string(previous)),
		zap.String("to", string(order.Status())),
	)
	uc.recorder.OrderTransitioned(string(order.Status()))
	uc.notifier.Notify(ctx, order)
	return order, nil
}
