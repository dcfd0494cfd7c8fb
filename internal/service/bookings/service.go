package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/bookings/models"
	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/ptr"
)

// Service сервіс бронювань: доступні слоти, створення, історія, скасування.
// Вся перевірка власності бронювань виконується основним API - шлюз
// передає access-токен сесії і мапить помилки.
type Service struct {
	client CoreAPIClient
	logger Logger
}

// NewService створює новий екземпляр сервісу бронювань
func NewService(client CoreAPIClient, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// AvailableTimeslots повертає слоти для залу або секції в domain-вигляді.
// Групування за датами і обчислення вибірності виконує usecase.
func (s *Service) AvailableTimeslots(ctx context.Context, hallID, sectionID *int64) ([]domain.TimeSlot, error) {
	slots, err := s.client.AvailableTimeslots(ctx, hallID, sectionID)
	if err != nil {
		if errors.Is(err, sportapi.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("AvailableTimeslots: core api error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return models.ToDomainTimeSlots(slots), nil
}

// CreateBooking надсилає намір бронювання основному API
func (s *Service) CreateBooking(ctx context.Context, accessToken string, req *models.CreateBookingRequest) (*models.CreateBookingResponse, error) {
	resp, err := s.client.CreateBooking(ctx, accessToken, req.ToWireRequest())
	if err != nil {
		switch {
		case errors.Is(err, sportapi.ErrBadRequest):
			s.logger.Warn("CreateBooking: rejected: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBookingRejected, err)
		case errors.Is(err, sportapi.ErrUnauthorized):
			return nil, ErrSessionExpired
		case errors.Is(err, sportapi.ErrNotFound):
			return nil, ErrReservationNotFound
		default:
			s.logger.Error("CreateBooking: core api error: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	s.logger.Info("CreateBooking: reservation id=%d created", resp.Reservation.ID)

	return &models.CreateBookingResponse{
		Message:     resp.Message,
		Reservation: models.FromWireReservation(&resp.Reservation),
	}, nil
}

// MyBookings повертає історію бронювань користувача з обчисленими статусами
func (s *Service) MyBookings(ctx context.Context, accessToken string) (*models.ReservationListResponse, error) {
	reservations, err := s.client.MyReservations(ctx, accessToken)
	if err != nil {
		if errors.Is(err, sportapi.ErrUnauthorized) {
			return nil, ErrSessionExpired
		}
		s.logger.Error("MyBookings: core api error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return models.FromWireReservationList(reservations), nil
}

// GetBooking повертає одне бронювання користувача
func (s *Service) GetBooking(ctx context.Context, accessToken string, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.client.GetReservation(ctx, accessToken, id)
	if err != nil {
		switch {
		case errors.Is(err, sportapi.ErrNotFound):
			s.logger.Warn("GetBooking: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		case errors.Is(err, sportapi.ErrForbidden):
			s.logger.Warn("GetBooking: access denied to reservation id=%d", id)
			return nil, ErrAccessDenied
		case errors.Is(err, sportapi.ErrUnauthorized):
			return nil, ErrSessionExpired
		default:
			s.logger.Error("GetBooking: core api error for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	resp := models.FromWireReservation(reservation)
	return &resp, nil
}

// CancelBooking скасовує бронювання користувача.
// Повторне скасування відсікається до звернення до основного API.
func (s *Service) CancelBooking(ctx context.Context, accessToken string, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("CancelBooking: reservation id=%d", id)

	current, err := s.client.GetReservation(ctx, accessToken, id)
	if err != nil {
		switch {
		case errors.Is(err, sportapi.ErrNotFound):
			return nil, ErrReservationNotFound
		case errors.Is(err, sportapi.ErrForbidden):
			return nil, ErrAccessDenied
		case errors.Is(err, sportapi.ErrUnauthorized):
			return nil, ErrSessionExpired
		default:
			s.logger.Error("CancelBooking: core api error for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	if !models.ToDomainReservation(current).CanBeCancelled() {
		s.logger.Warn("CancelBooking: reservation id=%d already cancelled", id)
		return nil, ErrCannotCancel
	}

	updated, err := s.client.PatchReservation(ctx, accessToken, id, sportapi.ReservationStatusPatch{
		ReservationStatus: ptr.Ptr(string(domain.StatusCancelled)),
	})
	if err != nil {
		switch {
		case errors.Is(err, sportapi.ErrBadRequest):
			return nil, ErrCannotCancel
		case errors.Is(err, sportapi.ErrUnauthorized):
			return nil, ErrSessionExpired
		default:
			s.logger.Error("CancelBooking: patch failed for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	s.logger.Info("CancelBooking: reservation id=%d cancelled", id)

	resp := models.FromWireReservation(updated)
	return &resp, nil
}
