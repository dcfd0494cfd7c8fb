package mark_notification_read

import (
	"context"
)

type NotificationsService interface {
	MarkRead(ctx context.Context, accessToken string, id int64) error
	MarkAllRead(ctx context.Context, accessToken string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
