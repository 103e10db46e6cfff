package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"palantir/internal/domain"
	apperrors "palantir/internal/errors"
)

// ResolvePaymentUseCase settles a PENDING payment and moves its order with it.
type ResolvePaymentUseCase struct {
	payments PaymentRepository
	orders   OrderStatusUpdater
	logger   *zap.Logger
}

func NewResolvePaymentUseCase(payments PaymentRepository, orders OrderStatusUpdater, logger *zap.Logger) *ResolvePaymentUseCase {
	return &ResolvePaymentUseCase{payments: payments, orders: orders, logger: logger}
}

func (uc *ResolvePaymentUseCase) Approve(ctx context.Context, storeID, paymentID string) (*domain.Payment, error) {
	payment, err := uc.findInStore(ctx, storeID, paymentID)
	if err != nil {
		return nil, err
	}
	return uc.approve(ctx, payment)
}

func (uc *ResolvePaymentUseCase) Cancel(ctx context.Context, storeID, paymentID string) (*domain.Payment, error) {
	payment, err := uc.findInStore(ctx, storeID, paymentID)
	if err != nil {
		return nil, err
	}
	return uc.cancel(ctx, payment)
}

// ConfirmByExternalID handles the provider callback. The provider reports
// "approved" or one of the refusal statuses; anything else is rejected.
func (uc *ResolvePaymentUseCase) ConfirmByExternalID(ctx context.Context, externalID, status string) (*domain.Payment, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, apperrors.NewInvalidArgument("externalId", "external id is required")
	}

	var resolve func(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved":
		resolve = uc.approve
	case "rejected", "refused", "cancelled", "canceled":
		resolve = uc.cancel
	default:
		return nil, apperrors.NewInvalidArgument("status", fmt.Sprintf("provider status %q is not supported", status))
	}

	payment, err := uc.payments.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	return resolve(ctx, payment)
}

func (uc *ResolvePaymentUseCase) findInStore(ctx context.Context, storeID, paymentID string) (*domain.Payment, error) {
	payment, err := uc.payments.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.StoreID() != storeID {
		return nil, apperrors.NewInvalidArgument("storeId", "payment does not belong to this store")
	}
	return payment, nil
}

// approve persists the approval before touching the order. If the order step
// fails the payment stays APPROVED and the order stays PENDING.
func (uc *ResolvePaymentUseCase) approve(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if err := payment.Approve(); err != nil {
		return nil, err
	}
	if err := uc.payments.Save(ctx, payment); err != nil {
		return nil, err
	}

	logger := uc.logger.With(zap.String("paymentId", payment.ID()), zap.String("orderId", payment.OrderID()))
	logger.Info("payment approved")

	if _, err := uc.orders.SetToReceived(ctx, payment.OrderID()); err != nil {
		logger.Error("payment approved but order was not moved to RECEIVED", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (uc *ResolvePaymentUseCase) cancel(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if err := payment.Reject(); err != nil {
		return nil, err
	}
	if err := uc.payments.Save(ctx, payment); err != nil {
		return nil, err
	}

	logger := uc.logger.With(zap.String("paymentId", payment.ID()), zap.String("orderId", payment.OrderID()))
	logger.Info("payment refused")

	if _, err := uc.orders.SetToCanceled(ctx, payment.OrderID()); err != nil {
		logger.Error("payment refused but order was not canceled", zap.Error(err))
		return nil, err
	}
	return payment, nil
}
