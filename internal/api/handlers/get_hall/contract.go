package get_hall

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/catalog/models"
)

type CatalogService interface {
	GetHall(ctx context.Context, id int64) (*models.HallResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
