package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"palantir/internal/domain"
	"palantir/internal/dto"
	apperrors "palantir/internal/errors"
)

type InitiatePaymentUseCase struct {
	payments PaymentRepository
	orders   OrderFinder
	provider QrCodeProvider
	logger   *zap.Logger
}

func NewInitiatePaymentUseCase(payments PaymentRepository, orders OrderFinder, provider QrCodeProvider, logger *zap.Logger) *InitiatePaymentUseCase {
	return &InitiatePaymentUseCase{
		payments: payments,
		orders:   orders,
		provider: provider,
		logger:   logger,
	}
}

// Initiate charges the order total. A REFUSED payment can be retried; a
// PENDING or APPROVED one blocks a new attempt.
func (uc *InitiatePaymentUseCase) Initiate(ctx context.Context, storeID string, req dto.InitiatePaymentRequest) (*domain.Payment, error) {
	orderID := strings.TrimSpace(req.OrderID)
	if orderID == "" {
		return nil, apperrors.NewInvalidArgument("orderId", "order id is required")
	}

	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.StoreID() != storeID {
		return nil, apperrors.NewInvalidArgument("storeId", "order does not belong to this store")
	}
	if order.Status() != domain.OrderStatusPending {
		return nil, apperrors.NewInvalidStateError(fmt.Sprintf("cannot pay for an order in %s status", order.Status()))
	}

	existing, err := uc.payments.FindByOrderID(ctx, orderID)
	if _, notFound := apperrors.IsNotFoundError(err); err != nil && !notFound {
		return nil, err
	}
	if existing != nil && existing.Status() != domain.PaymentStatusRefused {
		return nil, apperrors.NewConflictError(fmt.Sprintf("order %s already has a %s payment", orderID, existing.Status()))
	}

	paymentType := domain.PaymentType(strings.ToUpper(strings.TrimSpace(req.PaymentType)))
	payment, err := domain.NewPayment(orderID, storeID, paymentType, order.TotalPrice())
	if err != nil {
		return nil, err
	}

	qr, err := uc.provider.CreateQrCode(ctx, orderID, payment.Total(), orderTitle(orderID))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(qr.ID) == "" {
		return nil, apperrors.NewInternalError(
			fmt.Sprintf("payment provider %s returned no external reference for order %s", uc.provider.Platform(), orderID), nil)
	}
	if err := payment.AssociateExternal(qr.ID, uc.provider.Platform(), qr.QrCode); err != nil {
		return nil, err
	}

	if err := uc.payments.Save(ctx, payment); err != nil {
		return nil, err
	}

	uc.logger.Info("payment initiated",
		zap.String("paymentId", payment.ID()),
		zap.String("orderId", orderID),
		zap.String("paymentType", string(paymentType)),
		zap.String("total", payment.Total().StringFixed(2)),
	)
	return payment, nil
}

func orderTitle(orderID string) string {
	ref := orderID
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return "Order " + ref
}
