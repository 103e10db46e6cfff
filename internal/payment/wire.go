package payment

import (
	"database/sql"

	"go.uber.org/zap"

	"palantir/internal/payment/controller"
	"palantir/internal/payment/repository"
	"palantir/internal/payment/usecase"
)

// NewModule wires the payment use cases on top of the order module's
// repository and status use case.
func NewModule(
	db *sql.DB,
	orders usecase.OrderFinder,
	statusUpdater usecase.OrderStatusUpdater,
	provider usecase.QrCodeProvider,
	logger *zap.Logger,
) *controller.Controller {
	payments := repository.NewMySQLPaymentRepository(db)

	return controller.NewController(
		usecase.NewInitiatePaymentUseCase(payments, orders, provider, logger),
		usecase.NewResolvePaymentUseCase(payments, statusUpdater, logger),
		usecase.NewFindPaymentUseCase(payments),
		logger,
	)
}
