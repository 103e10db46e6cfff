package sender

import (
	"context"
	"time"

	"go.uber.org/zap"

	"palantir/internal/domain"
	"palantir/internal/infrastructure/kafka"
)

// LogSender writes the message to the log instead of a real provider. It
// backs EMAIL, SMS and WHATSAPP until those integrations exist.
type LogSender struct {
	channel domain.Channel
	logger  *zap.Logger
}

func NewLogSender(channel domain.Channel, logger *zap.Logger) *LogSender {
	return &LogSender{channel: channel, logger: logger}
}

func (s *LogSender) Send(ctx context.Context, destination domain.Destination, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Info("notification delivered",
		zap.String("channel", string(s.channel)),
		zap.String("destination", destination.String()),
		zap.Int("length", len(message)),
	)
	return nil
}

type monitorMessage struct {
	Token   string    `json:"token"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sentAt"`
}

// MonitorSender publishes to the topic the store monitors subscribe to,
// keyed by monitor token so one monitor sees its messages in order.
type MonitorSender struct {
	writer kafka.MessageWriter
}

func NewMonitorSender(writer kafka.MessageWriter) *MonitorSender {
	return &MonitorSender{writer: writer}
}

func (s *MonitorSender) Send(ctx context.Context, destination domain.Destination, message string) error {
	token := destination.String()
	return kafka.PublishJSON(ctx, s.writer, token, monitorMessage{
		Token:   token,
		Message: message,
		SentAt:  time.Now().UTC(),
	})
}
