package usecase

import (
	"context"
	"fmt"

	"palantir/internal/domain"
	apperrors "palantir/internal/errors"
)

type FindPaymentUseCase struct {
	payments PaymentRepository
}

func NewFindPaymentUseCase(payments PaymentRepository) *FindPaymentUseCase {
	return &FindPaymentUseCase{payments: payments}
}

func (uc *FindPaymentUseCase) FindByID(ctx context.Context, storeID, paymentID string) (*domain.Payment, error) {
	payment, err := uc.payments.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.StoreID() != storeID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("payment with id %s not found", paymentID))
	}
	return payment, nil
}

// FindByOrder returns the latest payment attempt for the order.
func (uc *FindPaymentUseCase) FindByOrder(ctx context.Context, storeID, orderID string) (*domain.Payment, error) {
	payment, err := uc.payments.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if payment.StoreID() != storeID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("payment for order %s not found", orderID))
	}
	return payment, nil
}
