package notification

import (
	"context"
	"log/slog"

	"minaret/internal/domain/entity"
	"minaret/internal/domain/service"

	"github.com/google/uuid"
)

type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates a PushSender that only logs. Used in local development
// when no Firebase credentials are configured; every send succeeds.
func NewLogSender(logger *slog.Logger) service.PushSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, device *entity.UserDevice, message *entity.RenderedMessage) (*service.PushReceipt, error) {
	s.logger.Info("Push send (log only)",
		slog.String("deviceID", device.DeviceID),
		slog.String("title", message.Title),
		slog.String("collapseKey", message.CollapseKey),
		slog.String("priority", string(message.Priority)),
	)

	return &service.PushReceipt{ProviderMessageID: "log-" + uuid.New().String()}, nil
}
