package list_notifications

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/notifications/models"
)

type NotificationsService interface {
	List(ctx context.Context, accessToken string) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
