package admin

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
)

// CoreAPIClient інтерфейс клієнта основного API для адмін-операцій
type CoreAPIClient interface {
	AllReservations(ctx context.Context, accessToken string) ([]sportapi.Reservation, error)
	PatchReservation(ctx context.Context, accessToken string, id int64, patch sportapi.ReservationStatusPatch) (*sportapi.Reservation, error)

	ListHalls(ctx context.Context, eventType *string, capacity *int) ([]sportapi.Hall, error)
	CreateHall(ctx context.Context, accessToken string, payload sportapi.HallPayload) (*sportapi.Hall, error)
	UpdateHall(ctx context.Context, accessToken string, id int64, payload sportapi.HallPayload) (*sportapi.Hall, error)
	DeleteHall(ctx context.Context, accessToken string, id int64) error

	ListSections(ctx context.Context, sportType, preparationLevel, ageCategory *string, hallID *int64) ([]sportapi.Section, error)
	CreateSection(ctx context.Context, accessToken string, payload sportapi.SectionPayload) (*sportapi.Section, error)
	UpdateSection(ctx context.Context, accessToken string, id int64, payload sportapi.SectionPayload) (*sportapi.Section, error)
	DeleteSection(ctx context.Context, accessToken string, id int64) error

	AddScheduleSlot(ctx context.Context, accessToken string, payload sportapi.SchedulePayload) error
	RemoveScheduleSlot(ctx context.Context, accessToken string, scheduleID int64) error

	ListTrainers(ctx context.Context) ([]sportapi.Trainer, error)
}

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
