package subscriptions

import (
	"context"
	"errors"
	"fmt"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/subscriptions/models"
)

// Service сервіс абонементів
type Service struct {
	client CoreAPIClient
	logger Logger
}

// NewService створює новий екземпляр сервісу абонементів
func NewService(client CoreAPIClient, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// List повертає каталог абонементів (доступний без сесії)
func (s *Service) List(ctx context.Context) (*models.SubscriptionListResponse, error) {
	subs, err := s.client.ListSubscriptions(ctx)
	if err != nil {
		s.logger.Error("List: core api error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return models.FromWireSubscriptionList(subs), nil
}

// Purchase купує абонемент для користувача сесії
func (s *Service) Purchase(ctx context.Context, accessToken string, subscriptionID int64) (*models.PurchaseResponse, error) {
	s.logger.Info("Purchase: subscription id=%d", subscriptionID)

	resp, err := s.client.PurchaseSubscription(ctx, accessToken, subscriptionID)
	if err != nil {
		switch {
		case errors.Is(err, sportapi.ErrNotFound):
			s.logger.Warn("Purchase: subscription id=%d not found", subscriptionID)
			return nil, ErrSubscriptionNotFound
		case errors.Is(err, sportapi.ErrBadRequest):
			s.logger.Warn("Purchase: rejected for subscription id=%d: %v", subscriptionID, err)
			return nil, fmt.Errorf("%w: %v", ErrPurchaseRejected, err)
		case errors.Is(err, sportapi.ErrUnauthorized):
			return nil, ErrSessionExpired
		default:
			s.logger.Error("Purchase: core api error for id=%d: %v", subscriptionID, err)
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	return &models.PurchaseResponse{
		Message:      resp.Message,
		Subscription: models.FromWireUserSubscription(&resp.UserSubscription),
	}, nil
}

// My повертає придбані абонементи користувача сесії
func (s *Service) My(ctx context.Context, accessToken string) (*models.UserSubscriptionListResponse, error) {
	subs, err := s.client.MySubscriptions(ctx, accessToken)
	if err != nil {
		if errors.Is(err, sportapi.ErrUnauthorized) {
			return nil, ErrSessionExpired
		}
		s.logger.Error("My: core api error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return models.FromWireUserSubscriptionList(subs), nil
}
