package redeem_points

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/loyalty/models"
)

// LoyaltyService сервіс програми лояльності
type LoyaltyService interface {
	Redeem(ctx context.Context, accessToken string, req *models.RedeemRequest) (*models.RedeemResponse, error)
}

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
