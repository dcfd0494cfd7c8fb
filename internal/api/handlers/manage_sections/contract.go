package manage_sections

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/admin/models"
	catalogModels "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/catalog/models"
)

// AdminService адмін-сервіс керування секціями та розкладом
type AdminService interface {
	CreateSection(ctx context.Context, accessToken string, req *models.SectionRequest) (*catalogModels.SectionResponse, error)
	UpdateSection(ctx context.Context, accessToken string, id int64, req *models.SectionRequest) (*catalogModels.SectionResponse, error)
	DeleteSection(ctx context.Context, accessToken string, id int64) error

	AddScheduleSlot(ctx context.Context, accessToken string, req *models.ScheduleSlotRequest) error
	RemoveScheduleSlot(ctx context.Context, accessToken string, scheduleID int64) error
}

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
