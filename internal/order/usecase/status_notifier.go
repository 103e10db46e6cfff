package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"palantir/internal/domain"
)

// StatusNotifier tells the store monitor, and the linked customer when the
// store allows it, that an order changed status. It never fails the caller.
type StatusNotifier struct {
	sender       NotificationSender
	storeConfigs StoreConfigFinder
	customers    CustomerFinder
	logger       *zap.Logger
}

func NewStatusNotifier(sender NotificationSender, storeConfigs StoreConfigFinder, customers CustomerFinder, logger *zap.Logger) *StatusNotifier {
	return &StatusNotifier{
		sender:       sender,
		storeConfigs: storeConfigs,
		customers:    customers,
		logger:       logger,
	}
}

func (n *StatusNotifier) Notify(ctx context.Context, order *domain.Order) {
	logger := n.logger.With(zap.String("orderId", order.ID()), zap.String("status", string(order.Status())))

	cfg, err := n.storeConfigs.FindOrDefault(ctx, order.StoreID())
	if err != nil {
		logger.Warn("store config unavailable, using defaults", zap.Error(err))
		cfg = domain.DefaultStoreConfig(order.StoreID())
	}

	message := statusMessage(order)
	if _, err := n.sender.Send(ctx, domain.ChannelMonitor, cfg.MonitorToken, message); err != nil {
		logger.Warn("monitor notification failed", zap.Error(err))
	}

	customerID, ok := order.CustomerID()
	if !ok || !cfg.NotifyCustomer {
		return
	}
	customer, err := n.customers.FindByID(ctx, customerID)
	if err != nil {
		logger.Warn("customer lookup for notification failed", zap.String("customerId", customerID), zap.Error(err))
		return
	}
	if _, err := n.sender.Send(ctx, domain.ChannelEmail, customer.Email.String(), message); err != nil {
		logger.Warn("customer notification failed", zap.String("customerId", customerID), zap.Error(err))
	}
}

func statusMessage(order *domain.Order) string {
	ref := order.ID()
	if len(ref) > 8 {
		ref = ref[:8]
	}
	switch order.Status() {
	case domain.OrderStatusReceived:
		return fmt.Sprintf("Order %s received. Payment confirmed.", ref)
	case domain.OrderStatusInProgress:
		return fmt.Sprintf("Order %s is being prepared.", ref)
	case domain.OrderStatusReady:
		return fmt.Sprintf("Order %s is ready for pickup.", ref)
	case domain.OrderStatusFinished:
		return fmt.Sprintf("Order %s was delivered. Enjoy!", ref)
	case domain.OrderStatusCanceled:
		return fmt.Sprintf("Order %s was canceled.", ref)
	default:
		return fmt.Sprintf("Order %s is %s.", ref, order.Status())
	}
}
