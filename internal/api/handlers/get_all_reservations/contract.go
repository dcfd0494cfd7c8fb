package get_all_reservations

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/admin/models"
	bookingModels "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/bookings/models"
)

// AdminService адмін-сервіс бронювань
type AdminService interface {
	AllReservations(ctx context.Context, accessToken string, filter models.ReservationFilter) (*bookingModels.ReservationListResponse, error)
}

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
