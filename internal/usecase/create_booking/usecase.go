package create_booking

import (
	"context"
	"errors"
	"fmt"

	bookingsService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/bookings"
)

// UseCase use case створення бронювання: валідація наміру на боці шлюзу,
// далі - основний API, який остаточно вирішує долю бронювання
type UseCase struct {
	bookings BookingsService
	logger   Logger
}

// NewUseCase створює новий екземпляр use case
func NewUseCase(bookings BookingsService, logger Logger) *UseCase {
	return &UseCase{
		bookings: bookings,
		logger:   logger,
	}
}

// Execute виконує use case створення бронювання
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: hall=%v, section=%v, timeslot=%d, seats=%d, method=%s",
		req.HallID, req.SectionID, req.TimeslotID, req.Seats, req.PaymentMethod)

	// 1. Валідація наміру бронювання
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Надсилаємо намір основному API
	resp, err := uc.bookings.CreateBooking(ctx, req.AccessToken, req.toServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingRejected):
			uc.logger.Warn("CreateBooking: rejected by core api: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBookingRejected, err)
		case errors.Is(err, bookingsService.ErrSessionExpired):
			return nil, ErrSessionExpired
		default:
			uc.logger.Error("CreateBooking: service error: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: reservation id=%d created", resp.Reservation.ID)

	return resp, nil
}
