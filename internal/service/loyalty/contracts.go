package loyalty

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
)

// CoreAPIClient інтерфейс клієнта основного API для лояльності
type CoreAPIClient interface {
	GetLoyalty(ctx context.Context, accessToken string) (*sportapi.Loyalty, error)
	RedeemPoints(ctx context.Context, accessToken string, req sportapi.RedeemRequest) (*sportapi.RedeemResult, error)
}

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
