package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"palantir/internal/domain"
	apperrors "palantir/internal/errors"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, notification *domain.Notification) error
}

type SendNotificationUseCase struct {
	dispatcher Dispatcher
	logger     *zap.Logger
}

func NewSendNotificationUseCase(dispatcher Dispatcher, logger *zap.Logger) *SendNotificationUseCase {
	return &SendNotificationUseCase{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Send validates the destination for the channel, dispatches the message and
// fails unless the notification ended up SENT. The notification is returned
// alongside the error when it was persisted as FAILED.
func (uc *SendNotificationUseCase) Send(ctx context.Context, channel domain.Channel, destination, message string) (*domain.Notification, error) {
	if !channel.IsValid() {
		return nil, apperrors.NewInvalidArgument("channel", fmt.Sprintf("channel %q is invalid", channel))
	}

	dest, err := domain.ParseDestination(channel, destination)
	if err != nil {
		return nil, err
	}

	notification, err := domain.NewNotification(channel, dest, message)
	if err != nil {
		return nil, err
	}

	if err := uc.dispatcher.Dispatch(ctx, notification); err != nil {
		return nil, err
	}

	if notification.Status() != domain.NotificationStatusSent {
		reason, _ := notification.ErrorMessage()
		uc.logger.Warn("notification not sent",
			zap.String("notificationId", notification.ID()),
			zap.String("status", string(notification.Status())),
			zap.String("reason", reason),
		)
		return notification, apperrors.NewInternalError(
			fmt.Sprintf("notification %s ended as %s", notification.ID(), notification.Status()), nil)
	}

	return notification, nil
}
