package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"palantir/internal/domain"
	apperrors "palantir/internal/errors"
	"palantir/internal/infrastructure/paymentprovider"
)

type mockPaymentRepository struct {
	FindByIDFunc         func(ctx context.Context, id string) (*domain.Payment, error)
	FindByOrderIDFunc    func(ctx context.Context, orderID string) (*domain.Payment, error)
	FindByExternalIDFunc func(ctx context.Context, externalID string) (*domain.Payment, error)
	SaveFunc             func(ctx context.Context, payment *domain.Payment) error
	saved                []*domain.Payment
}

func (m *mockPaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockPaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	if m.FindByOrderIDFunc == nil {
		return nil, apperrors.NewNotFoundError("payment for order " + orderID + " not found")
	}
	return m.FindByOrderIDFunc(ctx, orderID)
}

func (m *mockPaymentRepository) FindByExternalID(ctx context.Context, externalID string) (*domain.Payment, error) {
	return m.FindByExternalIDFunc(ctx, externalID)
}

func (m *mockPaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	m.saved = append(m.saved, payment)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, payment)
	}
	return nil
}

type mockOrderFinder struct {
	FindByIDFunc func(ctx context.Context, id string) (*domain.Order, error)
}

func (m *mockOrderFinder) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

type mockOrderStatusUpdater struct {
	SetToReceivedFunc func(ctx context.Context, orderID string) (*domain.Order, error)
	SetToCanceledFunc func(ctx context.Context, orderID string) (*domain.Order, error)
	received          []string
	canceled          []string
}

func (m *mockOrderStatusUpdater) SetToReceived(ctx context.Context, orderID string) (*domain.Order, error) {
	m.received = append(m.received, orderID)
	if m.SetToReceivedFunc != nil {
		return m.SetToReceivedFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *mockOrderStatusUpdater) SetToCanceled(ctx context.Context, orderID string) (*domain.Order, error) {
	m.canceled = append(m.canceled, orderID)
	if m.SetToCanceledFunc != nil {
		return m.SetToCanceledFunc(ctx, orderID)
	}
	return nil, nil
}

type mockProvider struct {
	CreateQrCodeFunc func(ctx context.Context, orderID string, total decimal.Decimal, title string) (*paymentprovider.QrCode, error)
}

func (m *mockProvider) CreateQrCode(ctx context.Context, orderID string, total decimal.Decimal, title string) (*paymentprovider.QrCode, error) {
	if m.CreateQrCodeFunc == nil {
		return &paymentprovider.QrCode{ID: "ext-1", QrCode: "qr-data"}, nil
	}
	return m.CreateQrCodeFunc(ctx, orderID, total, title)
}

func (m *mockProvider) Platform() string { return "test" }

func pendingOrder(t *testing.T) *domain.Order {
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

func pendingPayment(t *testing.T, orderID string) *domain.Payment {
	t.Helper()
	payment, err := domain.NewPayment(orderID, "store-1", domain.PaymentTypeQR, decimal.RequireFromString("25.00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := payment.AssociateExternal("ext-1", "test", "qr-data"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return payment
}
