package update_reservation_status

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/admin/models"
	bookingModels "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/bookings/models"
)

// AdminService адмін-сервіс бронювань
type AdminService interface {
	UpdateReservationStatus(ctx context.Context, accessToken string, id int64, req *models.UpdateStatusRequest) (*bookingModels.ReservationResponse, error)
}

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
