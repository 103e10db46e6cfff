package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"palantir/internal/domain"
	apperrors "palantir/internal/errors"
)

type mockOrderRepository struct {
	FindByIDFunc    func(ctx context.Context, id string) (*domain.Order, error)
	ListByStoreFunc func(ctx context.Context, storeID string, status *domain.OrderStatus) ([]*domain.Order, error)
	SaveFunc        func(ctx context.Context, order *domain.Order) error
	DeleteFunc      func(ctx context.Context, id string) error
	saved           []*domain.Order
	deleted         []string
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockOrderRepository) ListByStore(ctx context.Context, storeID string, status *domain.OrderStatus) ([]*domain.Order, error) {
	return m.ListByStoreFunc(ctx, storeID, status)
}

func (m *mockOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	m.saved = append(m.saved, order)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, order)
	}
	return nil
}

func (m *mockOrderRepository) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockProductCatalog struct {
	GetProductsByIDsAndStoreFunc func(ctx context.Context, ids []string, storeID string) ([]domain.Product, []string, error)
}

func (m *mockProductCatalog) GetProductsByIDsAndStore(ctx context.Context, ids []string, storeID string) ([]domain.Product, []string, error) {
	return m.GetProductsByIDsAndStoreFunc(ctx, ids, storeID)
}

type mockTotemFinder struct {
	FindTotemByIDFunc func(ctx context.Context, totemID string) (*domain.Totem, error)
}

func (m *mockTotemFinder) FindTotemByID(ctx context.Context, totemID string) (*domain.Totem, error) {
	return m.FindTotemByIDFunc(ctx, totemID)
}

type mockCustomerFinder struct {
	FindByIDFunc func(ctx context.Context, id string) (*domain.Customer, error)
}

func (m *mockCustomerFinder) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	return m.FindByIDFunc(ctx, id)
}

type mockPaymentFinder struct {
	FindByOrderIDFunc func(ctx context.Context, orderID string) (*domain.Payment, error)
}

func (m *mockPaymentFinder) FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	return m.FindByOrderIDFunc(ctx, orderID)
}

type sentNotification struct {
	channel     domain.Channel
	destination string
	message     string
}

type mockNotificationSender struct {
	SendFunc func(ctx context.Context, channel domain.Channel, destination, message string) (*domain.Notification, error)
	sent     []sentNotification
}

func (m *mockNotificationSender) Send(ctx context.Context, channel domain.Channel, destination, message string) (*domain.Notification, error) {
	m.sent = append(m.sent, sentNotification{channel, destination, message})
	if m.SendFunc != nil {
		return m.SendFunc(ctx, channel, destination, message)
	}
	return nil, nil
}

type mockStoreConfigFinder struct {
	FindOrDefaultFunc func(ctx context.Context, storeID string) (domain.StoreConfig, error)
}

func (m *mockStoreConfigFinder) FindOrDefault(ctx context.Context, storeID string) (domain.StoreConfig, error) {
	if m.FindOrDefaultFunc == nil {
		return domain.DefaultStoreConfig(storeID), nil
	}
	return m.FindOrDefaultFunc(ctx, storeID)
}

type mockNotifier struct {
	notified []*domain.Order
}

func (m *mockNotifier) Notify(ctx context.Context, order *domain.Order) {
	m.notified = append(m.notified, order)
}

type mockRecorder struct {
	transitions []string
}

func (m *mockRecorder) OrderTransitioned(status string) {
	m.transitions = append(m.transitions, status)
}

// newPendingOrder builds a PENDING order for store-1 with 2×10.00 + 1×5.00.
func newPendingOrder(t *testing.T) *domain.Order {
	t.Helper()
	first, err := domain.NewOrderItem("p1", decimal.RequireFromString("10.00"), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := domain.NewOrderItem("p2", decimal.RequireFromString("5.00"), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order, err := domain.NewOrder("store-1", nil, []*domain.OrderItem{first, second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return order
}

func repoWith(order *domain.Order) *mockOrderRepository {
	return &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return order, nil
		},
	}
}

func noPayments() *mockPaymentFinder {
	return &mockPaymentFinder{FindByOrderIDFunc: func(ctx context.Context, orderID string) (*domain.Payment, error) {
		return nil, apperrors.NewNotFoundError("payment for order " + orderID + " not found")
	}}
}

func paymentsWith(payment *domain.Payment) *mockPaymentFinder {
	return &mockPaymentFinder{FindByOrderIDFunc: func(ctx context.Context, orderID string) (*domain.Payment, error) {
		return payment, nil
	}}
}

func paymentWithStatus(t *testing.T, orderID string, status domain.PaymentStatus) *domain.Payment {
	t.Helper()
	payment, err := domain.NewPayment(orderID, "store-1", domain.PaymentTypePix, decimal.RequireFromString("25.00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	switch status {
	case domain.PaymentStatusApproved:
		err = payment.Approve()
	case domain.PaymentStatusRefused:
		err = payment.Reject()
	}
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return payment
}
