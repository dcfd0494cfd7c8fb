package subscriptions

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
)

// CoreAPIClient інтерфейс клієнта основного API для абонементів
type CoreAPIClient interface {
	ListSubscriptions(ctx context.Context) ([]sportapi.Subscription, error)
	PurchaseSubscription(ctx context.Context, accessToken string, subscriptionID int64) (*sportapi.PurchaseResponse, error)
	MySubscriptions(ctx context.Context, accessToken string) ([]sportapi.UserSubscription, error)
}

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
