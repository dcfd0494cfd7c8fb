package get_my_bookings

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/bookings/models"
)

type BookingsService interface {
	MyBookings(ctx context.Context, accessToken string) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
