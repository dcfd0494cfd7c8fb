package create_booking

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/bookings/models"
)

// BookingsService інтерфейс сервісу бронювань
type BookingsService interface {
	CreateBooking(ctx context.Context, accessToken string, req *models.CreateBookingRequest) (*models.CreateBookingResponse, error)
}

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
