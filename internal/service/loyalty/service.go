package loyalty

import (
	"context"
	"errors"
	"fmt"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/loyalty/models"
)

// Service сервіс програми лояльності
type Service struct {
	client CoreAPIClient
	logger Logger
}

// NewService створює новий екземпляр сервісу лояльності
func NewService(client CoreAPIClient, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Get повертає бали та картку користувача сесії
func (s *Service) Get(ctx context.Context, accessToken string) (*models.LoyaltyResponse, error) {
	loyalty, err := s.client.GetLoyalty(ctx, accessToken)
	if err != nil {
		if errors.Is(err, sportapi.ErrUnauthorized) {
			return nil, ErrSessionExpired
		}
		s.logger.Error("Get: core api error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return models.FromWireLoyalty(loyalty), nil
}

// Redeem списує бонусні бали за бронювання.
// Кількість балів обмежується до звернення до основного API.
func (s *Service) Redeem(ctx context.Context, accessToken string, req *models.RedeemRequest) (*models.RedeemResponse, error) {
	if req.Points <= 0 || req.Points > domain.MaxRedeemPoints {
		s.logger.Warn("Redeem: invalid points=%d for reservation=%d", req.Points, req.ReservationID)
		return nil, ErrInvalidPoints
	}

	s.logger.Info("Redeem: %d points for reservation=%d", req.Points, req.ReservationID)

	result, err := s.client.RedeemPoints(ctx, accessToken, sportapi.RedeemRequest{
		Reservation: req.ReservationID,
		Points:      req.Points,
	})
	if err != nil {
		switch {
		case errors.Is(err, sportapi.ErrBadRequest):
			s.logger.Warn("Redeem: rejected for reservation=%d: %v", req.ReservationID, err)
			return nil, fmt.Errorf("%w: %v", ErrRedeemRejected, err)
		case errors.Is(err, sportapi.ErrUnauthorized):
			return nil, ErrSessionExpired
		default:
			s.logger.Error("Redeem: core api error for reservation=%d: %v", req.ReservationID, err)
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	return models.FromWireRedeemResult(result), nil
}
