package bookings

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
)

// CoreAPIClient інтерфейс клієнта основного API для бронювань
type CoreAPIClient interface {
	AvailableTimeslots(ctx context.Context, hallID, sectionID *int64) ([]sportapi.TimeSlot, error)
	CreateBooking(ctx context.Context, accessToken string, req sportapi.CreateBookingRequest) (*sportapi.CreateBookingResponse, error)
	MyReservations(ctx context.Context, accessToken string) ([]sportapi.Reservation, error)
	GetReservation(ctx context.Context, accessToken string, id int64) (*sportapi.Reservation, error)
	PatchReservation(ctx context.Context, accessToken string, id int64, patch sportapi.ReservationStatusPatch) (*sportapi.Reservation, error)
}

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
