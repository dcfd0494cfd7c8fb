package get_my_subscriptions

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/subscriptions/models"
)

type SubscriptionsService interface {
	My(ctx context.Context, accessToken string) (*models.UserSubscriptionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
