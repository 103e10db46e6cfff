package gateway

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"palantir/internal/domain"
)

type Sender interface {
	Send(ctx context.Context, destination domain.Destination, message string) error
}

type Repository interface {
	Save(ctx context.Context, notification *domain.Notification) error
}

type Recorder interface {
	NotificationDispatched(channel, status string)
}

// Dispatcher sends a PENDING notification through its channel's sender,
// records the outcome on the aggregate and persists it. A send failure ends
// as a FAILED notification; only persistence errors are returned.
type Dispatcher struct {
	senders  map[domain.Channel]Sender
	repo     Repository
	recorder Recorder
	logger   *zap.Logger
}

func NewDispatcher(senders map[domain.Channel]Sender, repo Repository, recorder Recorder, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		senders:  senders,
		repo:     repo,
		recorder: recorder,
		logger:   logger,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, notification *domain.Notification) error {
	logger := d.logger.With(
		zap.String("notificationId", notification.ID()),
		zap.String("channel", string(notification.Channel())),
	)

	var sendErr error
	sender, ok := d.senders[notification.Channel()]
	if !ok {
		sendErr = fmt.Errorf("no sender registered for channel %s", notification.Channel())
	} else {
		sendErr = sender.Send(ctx, notification.Destination(), notification.Message())
	}

	if sendErr != nil {
		logger.Warn("notification send failed", zap.Error(sendErr))
		reason := sendErr.Error()
		if strings.TrimSpace(reason) == "" {
			reason = fmt.Sprintf("%s sender failed", notification.Channel())
		}
		if err := notification.MarkAsFailed(reason); err != nil {
			return err
		}
	} else if err := notification.MarkAsSent(); err != nil {
		return err
	}

	if err := d.repo.Save(ctx, notification); err != nil {
		logger.Error("failed to persist notification", zap.Error(err))
		return err
	}

	d.recorder.NotificationDispatched(string(notification.Channel()), string(notification.Status()))
	return nil
}
