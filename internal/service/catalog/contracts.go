package catalog

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
)

// CoreAPIClient інтерфейс клієнта основного API для каталогу
type CoreAPIClient interface {
	ListHalls(ctx context.Context, eventType *string, capacity *int) ([]sportapi.Hall, error)
	GetHall(ctx context.Context, id int64) (*sportapi.Hall, error)
	ListSections(ctx context.Context, sportType, preparationLevel, ageCategory *string, hallID *int64) ([]sportapi.Section, error)
	GetSection(ctx context.Context, id int64) (*sportapi.Section, error)
	ListTrainers(ctx context.Context) ([]sportapi.Trainer, error)
}

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
