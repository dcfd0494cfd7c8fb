package notifications

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
)

// CoreAPIClient інтерфейс клієнта основного API для сповіщень
type CoreAPIClient interface {
	ListNotifications(ctx context.Context, accessToken string) (*sportapi.NotificationList, error)
	MarkNotificationRead(ctx context.Context, accessToken string, id int64) error
	MarkAllNotificationsRead(ctx context.Context, accessToken string) error
}

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
