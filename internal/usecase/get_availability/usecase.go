package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	bookingsService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/bookings"
)

// UseCase use case доступності слотів: отримує сирі слоти від основного
// API, групує їх за датами і обчислює вибірність кожного слота та
// готовність до підтвердження
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

// Execute виконує use case отримання доступності
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: hall=%v, section=%v, selected=%v",
		req.HallID, req.SectionID, req.SelectedSlotID)

	// 1. Валідація цілі
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Отримуємо слоти від основного API
	slots, err := uc.bookings.AvailableTimeslots(ctx, req.HallID, req.SectionID)
	if err != nil {
		if errors.Is(err, bookingsService.ErrReservationNotFound) {
			uc.logger.Warn("GetAvailability: target not found")
			return nil, ErrTargetNotFound
		}
		uc.logger.Error("GetAvailability: service error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	kind := req.Kind()

	// 3. Групуємо за датами та обчислюємо вибірність
	byDate := domain.GroupSlotsByDate(slots)
	dates := domain.AvailableDates(slots)

	days := make([]Day, 0, len(dates))
	for _, date := range dates {
		daySlots := byDate[date]
		day := Day{Date: date, Slots: make([]Slot, 0, len(daySlots))}
		for i := range daySlots {
			day.Slots = append(day.Slots, toResponseSlot(&daySlots[i], kind))
		}
		days = append(days, day)
	}

	// 4. Готовність до підтвердження для обраного слота
	canConfirm := false
	if req.SelectedSlotID != nil {
		selected := findSlot(slots, *req.SelectedSlotID)
		canConfirm = domain.CanConfirm(selected, kind)
	}

	uc.logger.Info("GetAvailability: %d slots across %d dates, canConfirm=%t",
		len(slots), len(dates), canConfirm)

	return &Response{
		Kind:       string(kind),
		Dates:      dates,
		Days:       days,
		CanConfirm: canConfirm,
	}, nil
}

// toResponseSlot будує слот відповіді з обчисленою вибірністю
func toResponseSlot(s *domain.TimeSlot, kind domain.BookingKind) Slot {
	return Slot{
		ID:             s.ID,
		StartTime:      s.StartTime.String(),
		EndTime:        s.EndTime.String(),
		AvailableSeats: s.AvailableSeats,
		TotalSeats:     s.TotalSeats,
		IsBooked:       s.IsBooked,
		HasSections:    s.HasSections,
		Selectable:     s.SelectableFor(kind),
	}
}

// findSlot шукає слот за ідентифікатором, nil якщо не знайдено
func findSlot(slots []domain.TimeSlot, id int64) *domain.TimeSlot {
	for i := range slots {
		if slots[i].ID == id {
			return &slots[i]
		}
	}
	return nil
}
