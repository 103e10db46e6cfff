package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"palantir/internal/domain"
	apperrors "palantir/internal/errors"
)

func TestFindOrders_FindByID(t *testing.T) {
	order := newPendingOrder(t)
	uc := NewFindOrdersUseCase(repoWith(order))

	got, err := uc.FindByID(context.Background(), "store-1", order.ID())
	require.NoError(t, err)
	assert.Equal(t, order.ID(), got.ID())

	_, err = uc.FindByID(context.Background(), "store-2", order.ID())
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok, "orders of other stores must look missing, got %v", err)
}

func TestFindOrders_List(t *testing.T) {
	var gotStatus *domain.OrderStatus
	orders := &mockOrderRepository{
		ListByStoreFunc: func(ctx context.Context, storeID string, status *domain.OrderStatus) ([]*domain.Order, error) {
			gotStatus = status
			return []*domain.Order{newPendingOrder(t)}, nil
		},
	}
	uc := NewFindOrdersUseCase(orders)

	list, err := uc.List(context.Background(), "store-1", "ready")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	require.NotNil(t, gotStatus)
	assert.Equal(t, domain.OrderStatusReady, *gotStatus)

	_, err = uc.List(context.Background(), "store-1", "")
	require.NoError(t, err)
	assert.Nil(t, gotStatus)

	_, err = uc.List(context.Background(), "store-1", "LOST")
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok, "expected ValidationError, got %v", err)
}

func TestLinkCustomer(t *testing.T) {
	customers := &mockCustomerFinder{FindByIDFunc: func(ctx context.Context, id string) (*domain.Customer, error) {
		if id == "c-1" {
			return &domain.Customer{ID: id}, nil
		}
		return nil, apperrors.NewNotFoundError("customer with id " + id + " not found")
	}}

	t.Run("links once", func(t *testing.T) {
		order := newPendingOrder(t)
		orders := repoWith(order)
		uc := NewLinkCustomerUseCase(orders, customers, zap.NewNop())

		got, err := uc.Link(context.Background(), "store-1", order.ID(), "c-1")
		require.NoError(t, err)
		id, ok := got.CustomerID()
		assert.True(t, ok)
		assert.Equal(t, "c-1", id)
		assert.Len(t, orders.saved, 1)

		_, err = uc.Link(context.Background(), "store-1", order.ID(), "c-1")
		_, conflict := apperrors.IsConflictError(err)
		assert.True(t, conflict, "expected ConflictError, got %v", err)
	})

	t.Run("unknown customer", func(t *testing.T) {
		order := newPendingOrder(t)
		uc := NewLinkCustomerUseCase(repoWith(order), customers, zap.NewNop())

		_, err := uc.Link(context.Background(), "store-1", order.ID(), "c-404")
		_, ok := apperrors.IsNotFoundError(err)
		assert.True(t, ok, "expected NotFoundError, got %v", err)
	})

	t.Run("other store", func(t *testing.T) {
		order := newPendingOrder(t)
		uc := NewLinkCustomerUseCase(repoWith(order), customers, zap.NewNop())

		_, err := uc.Link(context.Background(), "store-2", order.ID(), "c-1")
		_, ok := apperrors.IsValidationError(err)
		assert.True(t, ok, "expected ValidationError, got %v", err)
	})
}

func TestRemoveOrderItem(t *testing.T) {
	t.Run("removes one of many", func(t *testing.T) {
		order := newPendingOrder(t)
		orders := repoWith(order)
		uc := NewRemoveOrderItemUseCase(orders, noPayments(), zap.NewNop())

		got, deleted, err := uc.Remove(context.Background(), "store-1", order.ID(), order.Items()[1].ID())
		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Len(t, got.Items(), 1)
		assert.True(t, got.TotalPrice().Equal(decimal.NewFromInt(20)), "total %s", got.TotalPrice())
		assert.Len(t, orders.saved, 1)
		assert.Empty(t, orders.deleted)
	})

	t.Run("last item deletes the order", func(t *testing.T) {
		order := newPendingOrder(t)
		orders := repoWith(order)
		uc := NewRemoveOrderItemUseCase(orders, noPayments(), zap.NewNop())

		_, _, err := uc.Remove(context.Background(), "store-1", order.ID(), order.Items()[0].ID())
		require.NoError(t, err)

		got, deleted, err := uc.Remove(context.Background(), "store-1", order.ID(), order.Items()[0].ID())
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Nil(t, got)
		assert.Equal(t, []string{order.ID()}, orders.deleted)
	})

	t.Run("last item kept while payment is pending", func(t *testing.T) {
		order := newPendingOrder(t)
		orders := repoWith(order)
		uc := NewRemoveOrderItemUseCase(orders, paymentsWith(paymentWithStatus(t, order.ID(), domain.PaymentStatusPending)), zap.NewNop())

		_, _, err := uc.Remove(context.Background(), "store-1", order.ID(), order.Items()[0].ID())
		require.NoError(t, err)

		got, deleted, err := uc.Remove(context.Background(), "store-1", order.ID(), order.Items()[0].ID())
		_, ok := apperrors.IsConflictError(err)
		assert.True(t, ok, "expected ConflictError, got %v", err)
		assert.False(t, deleted)
		assert.Nil(t, got)
		assert.Empty(t, orders.deleted)
	})

	t.Run("unknown item", func(t *testing.T) {
		order := newPendingOrder(t)
		uc := NewRemoveOrderItemUseCase(repoWith(order), noPayments(), zap.NewNop())

		_, _, err := uc.Remove(context.Background(), "store-1", order.ID(), "missing")
		_, ok := apperrors.IsNotFoundError(err)
		assert.True(t, ok, "expected NotFoundError, got %v", err)
	})

	t.Run("order no longer pending", func(t *testing.T) {
		order := newPendingOrder(t)
		require.NoError(t, order.SetToCanceled())
		uc := NewRemoveOrderItemUseCase(repoWith(order), noPayments(), zap.NewNop())

		_, _, err := uc.Remove(context.Background(), "store-1", order.ID(), order.Items()[0].ID())
		_, ok := apperrors.IsInvalidStateError(err)
		assert.True(t, ok, "expected InvalidStateError, got %v", err)
	})
}

func TestDeleteOrder(t *testing.T) {
	t.Run("pending order", func(t *testing.T) {
		order := newPendingOrder(t)
		orders := repoWith(order)
		uc := NewDeleteOrderUseCase(orders, noPayments(), zap.NewNop())

		require.NoError(t, uc.Delete(context.Background(), "store-1", order.ID()))
		assert.Equal(t, []string{order.ID()}, orders.deleted)
	})

	t.Run("open payment blocks deletion", func(t *testing.T) {
		for _, status := range []domain.PaymentStatus{domain.PaymentStatusPending, domain.PaymentStatusApproved} {
			order := newPendingOrder(t)
			orders := repoWith(order)
			uc := NewDeleteOrderUseCase(orders, paymentsWith(paymentWithStatus(t, order.ID(), status)), zap.NewNop())

			err := uc.Delete(context.Background(), "store-1", order.ID())
			_, ok := apperrors.IsConflictError(err)
			assert.True(t, ok, "expected ConflictError for %s payment, got %v", status, err)
			assert.Empty(t, orders.deleted)
		}
	})

	t.Run("refused payment allows deletion", func(t *testing.T) {
		order := newPendingOrder(t)
		orders := repoWith(order)
		uc := NewDeleteOrderUseCase(orders, paymentsWith(paymentWithStatus(t, order.ID(), domain.PaymentStatusRefused)), zap.NewNop())

		require.NoError(t, uc.Delete(context.Background(), "store-1", order.ID()))
		assert.Equal(t, []string{order.ID()}, orders.deleted)
	})

	t.Run("canceled order", func(t *testing.T) {
		order := newPendingOrder(t)
		require.NoError(t, order.SetToCanceled())
		orders := repoWith(order)
		uc := NewDeleteOrderUseCase(orders, noPayments(), zap.NewNop())

		err := uc.Delete(context.Background(), "store-1", order.ID())
		_, ok := apperrors.IsInvalidStateError(err)
		assert.True(t, ok, "expected InvalidStateError, got %v", err)
		assert.Empty(t, orders.deleted)
	})

	t.Run("missing order", func(t *testing.T) {
		orders := &mockOrderRepository{FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order with id " + id + " not found")
		}}
		uc := NewDeleteOrderUseCase(orders, noPayments(), zap.NewNop())

		err := uc.Delete(context.Background(), "store-1", "missing")
		_, ok := apperrors.IsNotFoundError(err)
		assert.True(t, ok, "expected NotFoundError, got %v", err)
	})
}
