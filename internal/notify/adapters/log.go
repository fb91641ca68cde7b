package adapters

import (
	"context"
	"log/slog"

	"bulwark/internal/notify/models"
)

// LogSender writes messages to the log. It stands in for Kafka when no
// brokers are configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, m *models.Message) error {
	s.logger.InfoContext(ctx, "push message",
		"message_id", m.ID,
		"kind", m.Kind,
		"recipients", m.Recipients,
		"content", m.Content,
	)
	return nil
}
