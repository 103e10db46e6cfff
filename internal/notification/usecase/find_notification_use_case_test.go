package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"palantir/internal/domain"
	apperrors "palantir/internal/errors"
)

type mockNotificationRepository struct {
	FindByIDFunc func(ctx context.Context, id string) (*domain.Notification, error)
}

func (m *mockNotificationRepository) FindByID(ctx context.Context, id string) (*domain.Notification, error) {
	return m.FindByIDFunc(ctx, id)
}

func TestFindNotification_NotFound(t *testing.T) {
	repo := &mockNotificationRepository{FindByIDFunc: func(ctx context.Context, id string) (*domain.Notification, error) {
		return nil, apperrors.NewNotFoundError("notification with id " + id + " not found")
	}}

	_, err := NewFindNotificationUseCase(repo).FindByID(context.Background(), "n-1")

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
