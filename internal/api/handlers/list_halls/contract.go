package list_halls

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/catalog/models"
)

type CatalogService interface {
	ListHalls(ctx context.Context, filter domain.HallFilter) (*models.HallListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
