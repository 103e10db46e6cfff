package order

import (
	"database/sql"

	"go.uber.org/zap"

	"palantir/internal/config"
	customerrepo "palantir/internal/customer/repository"
	"palantir/internal/order/controller"
	orderrepo "palantir/internal/order/repository"
	"palantir/internal/order/usecase"
	paymentrepo "palantir/internal/payment/repository"
	storerepo "palantir/internal/store/repository"
)

type Module struct {
	Controller   *controller.Controller
	Repository   *orderrepo.MySQLOrderRepository
	StatusUpdate *usecase.UpdateOrderStatusUseCase
}

// NewModule wires the order use cases. The product catalog, totem lookup and
// notification sender come from their own modules.
func NewModule(
	db *sql.DB,
	cfg *config.Config,
	catalog usecase.ProductCatalog,
	totems usecase.TotemFinder,
	sender usecase.NotificationSender,
	recorder usecase.TransitionRecorder,
	logger *zap.Logger,
) *Module {
	orders := orderrepo.NewMySQLOrderRepository(db, logger, cfg.Order.SaveTxTimeout, cfg.Order.MaxRetryAttempts)
	customers := customerrepo.NewMySQLCustomerRepository(db)
	payments := paymentrepo.NewMySQLPaymentRepository(db)
	storeConfigs := storerepo.NewMySQLStoreConfigRepository(db)

	notifier := usecase.NewStatusNotifier(sender, storeConfigs, customers, logger)
	updateStatus := usecase.NewUpdateOrderStatusUseCase(orders, payments, notifier, recorder, logger)

	ctrl := controller.NewController(
		usecase.NewCreateOrderUseCase(orders, catalog, totems, customers, logger),
		usecase.NewFindOrdersUseCase(orders),
		updateStatus,
		usecase.NewLinkCustomerUseCase(orders, customers, logger),
		usecase.NewRemoveOrderItemUseCase(orders, payments, logger),
		usecase.NewDeleteOrderUseCase(orders, payments, logger),
		logger,
	)

	return &Module{
		Controller:   ctrl,
		Repository:   orders,
		StatusUpdate: updateStatus,
	}
}
