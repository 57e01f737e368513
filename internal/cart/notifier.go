package cart

import (
	"context"

	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// LogNotifier writes notifications to a zap logger.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, notification port.Notification) {
	if notification.Level == port.NotificationFailure {
		n.logger.Warn(notification.Message, zap.String("level", string(notification.Level)))
		return
	}
	n.logger.Info(notification.Message, zap.String("level", string(notification.Level)))
}
