package purchase_subscription

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/subscriptions/models"
)

type SubscriptionsService interface {
	Purchase(ctx context.Context, accessToken string, subscriptionID int64) (*models.PurchaseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
