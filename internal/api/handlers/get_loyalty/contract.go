package get_loyalty

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/loyalty/models"
)

type LoyaltyService interface {
	Get(ctx context.Context, accessToken string) (*models.LoyaltyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
