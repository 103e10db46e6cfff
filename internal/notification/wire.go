package notification

import (
	"database/sql"

	"go.uber.org/zap"

	"palantir/internal/config"
	"palantir/internal/domain"
	"palantir/internal/infrastructure/kafka"
	"palantir/internal/infrastructure/metrics"
	"palantir/internal/notification/controller"
	"palantir/internal/notification/gateway"
	"palantir/internal/notification/repository"
	"palantir/internal/notification/sender"
	"palantir/internal/notification/usecase"
)

type Module struct {
	Controller *controller.Controller
	Sender     *usecase.SendNotificationUseCase
	Close      func() error
}

// NewModule wires the channel senders. MONITOR goes to Kafka when brokers are
// configured and to the log otherwise.
func NewModule(db *sql.DB, cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) *Module {
	closeFn := func() error { return nil }

	senders := map[domain.Channel]gateway.Sender{
		domain.ChannelEmail:    sender.NewLogSender(domain.ChannelEmail, logger),
		domain.ChannelSMS:      sender.NewLogSender(domain.ChannelSMS, logger),
		domain.ChannelWhatsApp: sender.NewLogSender(domain.ChannelWhatsApp, logger),
		domain.ChannelMonitor:  sender.NewLogSender(domain.ChannelMonitor, logger),
	}
	if client := kafka.NewClient(cfg.Kafka.Brokers); client.Enabled() {
		writer := client.NewWriter(cfg.Kafka.MonitorTopic)
		senders[domain.ChannelMonitor] = sender.NewMonitorSender(writer)
		closeFn = writer.Close
		logger.Info("monitor notifications published to kafka", zap.String("topic", cfg.Kafka.MonitorTopic))
	}

	repo := repository.NewMySQLNotificationRepository(db)
	dispatcher := gateway.NewDispatcher(senders, repo, m, logger)
	send := usecase.NewSendNotificationUseCase(dispatcher, logger)
	find := usecase.NewFindNotificationUseCase(repo)

	return &Module{
		Controller: controller.NewController(send, find, logger),
		Sender:     send,
		Close:      closeFn,
	}
}
