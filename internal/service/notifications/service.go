package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/notifications/models"
)

// Service сервіс сповіщень користувача
type Service struct {
	client CoreAPIClient
	logger Logger
}

// NewService створює новий екземпляр сервісу сповіщень
func NewService(client CoreAPIClient, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// List повертає сповіщення користувача з лічильником непрочитаних
func (s *Service) List(ctx context.Context, accessToken string) (*models.NotificationListResponse, error) {
	list, err := s.client.ListNotifications(ctx, accessToken)
	if err != nil {
		if errors.Is(err, sportapi.ErrUnauthorized) {
			return nil, ErrSessionExpired
		}
		s.logger.Error("List: core api error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return models.FromWireNotificationList(list), nil
}

// MarkRead позначає одне сповіщення прочитаним
func (s *Service) MarkRead(ctx context.Context, accessToken string, id int64) error {
	if err := s.client.MarkNotificationRead(ctx, accessToken, id); err != nil {
		switch {
		case errors.Is(err, sportapi.ErrNotFound):
			s.logger.Warn("MarkRead: notification id=%d not found", id)
			return ErrNotificationNotFound
		case errors.Is(err, sportapi.ErrUnauthorized):
			return ErrSessionExpired
		default:
			s.logger.Error("MarkRead: core api error for id=%d: %v", id, err)
			return fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}
	return nil
}

// MarkAllRead позначає всі сповіщення користувача прочитаними
func (s *Service) MarkAllRead(ctx context.Context, accessToken string) error {
	if err := s.client.MarkAllNotificationsRead(ctx, accessToken); err != nil {
		if errors.Is(err, sportapi.ErrUnauthorized) {
			return ErrSessionExpired
		}
		s.logger.Error("MarkAllRead: core api error: %v", err)
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}
