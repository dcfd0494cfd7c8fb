package list_subscriptions

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/subscriptions/models"
)

type SubscriptionsService interface {
	List(ctx context.Context) (*models.SubscriptionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
