package get_availability

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
)

// BookingsService інтерфейс сервісу бронювань
type BookingsService interface {
	AvailableTimeslots(ctx context.Context, hallID, sectionID *int64) ([]domain.TimeSlot, error)
}

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
