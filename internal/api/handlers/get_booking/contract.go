package get_booking

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/bookings/models"
)

type BookingsService interface {
	GetBooking(ctx context.Context, accessToken string, id int64) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
