package get_dashboard

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/admin/models"
)

// AdminService адмін-сервіс зведення
type AdminService interface {
	Dashboard(ctx context.Context, accessToken string) (*models.DashboardResponse, error)
}

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
