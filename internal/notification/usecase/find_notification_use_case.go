package usecase

import (
	"context"

	"palantir/internal/domain"
)

type NotificationRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
}

type FindNotificationUseCase struct {
	repo NotificationRepository
}

func NewFindNotificationUseCase(repo NotificationRepository) *FindNotificationUseCase {
	return &FindNotificationUseCase{repo: repo}
}

func (uc *FindNotificationUseCase) FindByID(ctx context.Context, id string) (*domain.Notification, error) {
	return uc.repo.FindByID(ctx, id)
}
