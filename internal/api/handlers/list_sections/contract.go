package list_sections

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/catalog/models"
)

type CatalogService interface {
	ListSections(ctx context.Context, filter domain.SectionFilter) (*models.SectionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
