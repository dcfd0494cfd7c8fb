package get_section

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/catalog/models"
)

type CatalogService interface {
	GetSection(ctx context.Context, id int64) (*models.SectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
