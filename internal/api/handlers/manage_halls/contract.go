package manage_halls

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/admin/models"
	catalogModels "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/catalog/models"
)

// AdminService адмін-сервіс керування залами
type AdminService interface {
	CreateHall(ctx context.Context, accessToken string, req *models.HallRequest) (*catalogModels.HallResponse, error)
	UpdateHall(ctx context.Context, accessToken string, id int64, req *models.HallRequest) (*catalogModels.HallResponse, error)
	DeleteHall(ctx context.Context, accessToken string, id int64) error
}

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
