package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"palantir/internal/domain"
)

func customerNamed(t *testing.T, id, email string) *domain.Customer {
	t.Helper()
	vo, err := domain.NewEmail(email)
	require.NoError(t, err)
	return &domain.Customer{ID: id, Name: "Ana", Email: vo}
}

func TestStatusNotifier_MonitorAndCustomer(t *testing.T) {
	order := newPendingOrder(t)
	require.NoError(t, order.AssociateCustomer("c-1"))
	require.NoError(t, order.SetToReceived())

	sender := &mockNotificationSender{}
	configs := &mockStoreConfigFinder{FindOrDefaultFunc: func(ctx context.Context, storeID string) (domain.StoreConfig, error) {
		return domain.StoreConfig{StoreID: storeID, MonitorToken: "kitchen-tv", NotifyCustomer: true}, nil
	}}
	customers := &mockCustomerFinder{FindByIDFunc: func(ctx context.Context, id string) (*domain.Customer, error) {
		return customerNamed(t, id, "ana@example.com"), nil
	}}

	NewStatusNotifier(sender, configs, customers, zap.NewNop()).Notify(context.Background(), order)

	require.Len(t, sender.sent, 2)
	assert.Equal(t, domain.ChannelMonitor, sender.sent[0].channel)
	assert.Equal(t, "kitchen-tv", sender.sent[0].destination)
	assert.Contains(t, sender.sent[0].message, "received")
	assert.Contains(t, sender.sent[0].message, order.ID()[:8])
	assert.Equal(t, domain.ChannelEmail, sender.sent[1].channel)
	assert.Equal(t, "ana@example.com", sender.sent[1].destination)
}

func TestStatusNotifier_CustomerOptOut(t *testing.T) {
	order := newPendingOrder(t)
	require.NoError(t, order.AssociateCustomer("c-1"))

	sender := &mockNotificationSender{}
	configs := &mockStoreConfigFinder{FindOrDefaultFunc: func(ctx context.Context, storeID string) (domain.StoreConfig, error) {
		return domain.StoreConfig{StoreID: storeID, MonitorToken: storeID, NotifyCustomer: false}, nil
	}}
	customers := &mockCustomerFinder{FindByIDFunc: func(ctx context.Context, id string) (*domain.Customer, error) {
		t.Fatal("customer must not be looked up")
		return nil, nil
	}}

	NewStatusNotifier(sender, configs, customers, zap.NewNop()).Notify(context.Background(), order)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, domain.ChannelMonitor, sender.sent[0].channel)
}

func TestStatusNotifier_FailuresAreSwallowed(t *testing.T) {
	order := newPendingOrder(t)
	require.NoError(t, order.AssociateCustomer("c-1"))

	sender := &mockNotificationSender{SendFunc: func(ctx context.Context, channel domain.Channel, destination, message string) (*domain.Notification, error) {
		return nil, errors.New("broker down")
	}}
	configs := &mockStoreConfigFinder{FindOrDefaultFunc: func(ctx context.Context, storeID string) (domain.StoreConfig, error) {
		return domain.StoreConfig{}, errors.New("db down")
	}}
	customers := &mockCustomerFinder{FindByIDFunc: func(ctx context.Context, id string) (*domain.Customer, error) {
		return customerNamed(t, id, "ana@example.com"), nil
	}}

	assert.NotPanics(t, func() {
		NewStatusNotifier(sender, configs, customers, zap.NewNop()).Notify(context.Background(), order)
	})
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "store-1", sender.sent[0].destination, "falls back to the default monitor token")
}
