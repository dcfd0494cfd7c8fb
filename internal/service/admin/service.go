package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/admin/models"
	bookingModels "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/bookings/models"
	catalogModels "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/catalog/models"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/view"
)

// Service адмін-сервіс: всі бронювання, керування статусами,
// CRUD залів і секцій, розклад, дашборд
type Service struct {
	client CoreAPIClient
	logger Logger
}

// NewService створює новий екземпляр адмін-сервісу
func NewService(client CoreAPIClient, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// AllReservations повертає всі бронювання з фільтрацією на боці шлюзу
func (s *Service) AllReservations(ctx context.Context, accessToken string, filter models.ReservationFilter) (*bookingModels.ReservationListResponse, error) {
	reservations, err := s.client.AllReservations(ctx, accessToken)
	if err != nil {
		return nil, s.mapError("AllReservations", err)
	}

	return models.FilterReservations(reservations, filter), nil
}

// UpdateReservationStatus змінює статуси бронювання
func (s *Service) UpdateReservationStatus(ctx context.Context, accessToken string, id int64, req *models.UpdateStatusRequest) (*bookingModels.ReservationResponse, error) {
	if req.ReservationStatus == nil && req.PaymentStatus == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.ReservationStatus != nil && !validReservationStatus(*req.ReservationStatus) {
		return nil, fmt.Errorf("%w: reservation status %q", ErrInvalidStatus, *req.ReservationStatus)
	}
	if req.PaymentStatus != nil && !validPaymentStatus(*req.PaymentStatus) {
		return nil, fmt.Errorf("%w: payment status %q", ErrInvalidStatus, *req.PaymentStatus)
	}

	s.logger.Info("UpdateReservationStatus: reservation id=%d", id)

	updated, err := s.client.PatchReservation(ctx, accessToken, id, req.ToWirePatch())
	if err != nil {
		if errors.Is(err, sportapi.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, s.mapError("UpdateReservationStatus", err)
	}

	resp := bookingModels.FromWireReservation(updated)
	return &resp, nil
}

// CreateHall створює зал
func (s *Service) CreateHall(ctx context.Context, accessToken string, req *models.HallRequest) (*catalogModels.HallResponse, error) {
	hall, err := s.client.CreateHall(ctx, accessToken, req.ToWirePayload())
	if err != nil {
		return nil, s.mapError("CreateHall", err)
	}

	s.logger.Info("CreateHall: hall id=%d created", hall.ID)

	resp := catalogModels.FromWireHall(hall)
	return &resp, nil
}

// UpdateHall оновлює зал
func (s *Service) UpdateHall(ctx context.Context, accessToken string, id int64, req *models.HallRequest) (*catalogModels.HallResponse, error) {
	hall, err := s.client.UpdateHall(ctx, accessToken, id, req.ToWirePayload())
	if err != nil {
		if errors.Is(err, sportapi.ErrNotFound) {
			return nil, ErrHallNotFound
		}
		return nil, s.mapError("UpdateHall", err)
	}

	resp := catalogModels.FromWireHall(hall)
	return &resp, nil
}

// DeleteHall видаляє зал
func (s *Service) DeleteHall(ctx context.Context, accessToken string, id int64) error {
	if err := s.client.DeleteHall(ctx, accessToken, id); err != nil {
		if errors.Is(err, sportapi.ErrNotFound) {
			return ErrHallNotFound
		}
		return s.mapError("DeleteHall", err)
	}

	s.logger.Info("DeleteHall: hall id=%d deleted", id)
	return nil
}

// CreateSection створює секцію
func (s *Service) CreateSection(ctx context.Context, accessToken string, req *models.SectionRequest) (*catalogModels.SectionResponse, error) {
	section, err := s.client.CreateSection(ctx, accessToken, req.ToWirePayload())
	if err != nil {
		return nil, s.mapError("CreateSection", err)
	}

	s.logger.Info("CreateSection: section id=%d created", section.ID)

	resp := catalogModels.FromWireSection(section)
	return &resp, nil
}

// UpdateSection оновлює секцію
func (s *Service) UpdateSection(ctx context.Context, accessToken string, id int64, req *models.SectionRequest) (*catalogModels.SectionResponse, error) {
	section, err := s.client.UpdateSection(ctx, accessToken, id, req.ToWirePayload())
	if err != nil {
		if errors.Is(err, sportapi.ErrNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, s.mapError("UpdateSection", err)
	}

	resp := catalogModels.FromWireSection(section)
	return &resp, nil
}

// DeleteSection видаляє секцію
func (s *Service) DeleteSection(ctx context.Context, accessToken string, id int64) error {
	if err := s.client.DeleteSection(ctx, accessToken, id); err != nil {
		if errors.Is(err, sportapi.ErrNotFound) {
			return ErrSectionNotFound
		}
		return s.mapError("DeleteSection", err)
	}

	s.logger.Info("DeleteSection: section id=%d deleted", id)
	return nil
}

// AddScheduleSlot додає слот до розкладу секції
func (s *Service) AddScheduleSlot(ctx context.Context, accessToken string, req *models.ScheduleSlotRequest) error {
	if err := s.client.AddScheduleSlot(ctx, accessToken, req.ToWirePayload()); err != nil {
		return s.mapError("AddScheduleSlot", err)
	}

	s.logger.Info("AddScheduleSlot: section=%d date=%s %s-%s", req.SectionID, req.Date, req.StartTime, req.EndTime)
	return nil
}

// RemoveScheduleSlot прибирає слот з розкладу секції
func (s *Service) RemoveScheduleSlot(ctx context.Context, accessToken string, scheduleID int64) error {
	if err := s.client.RemoveScheduleSlot(ctx, accessToken, scheduleID); err != nil {
		if errors.Is(err, sportapi.ErrNotFound) {
			return ErrSectionNotFound
		}
		return s.mapError("RemoveScheduleSlot", err)
	}

	s.logger.Info("RemoveScheduleSlot: schedule id=%d removed", scheduleID)
	return nil
}

// Dashboard збирає зведення чотирма паралельними запитами.
// Помилка однієї панелі не валить решту: кожна панель несе власний стан.
func (s *Service) Dashboard(ctx context.Context, accessToken string) (*models.DashboardResponse, error) {
	resp := &models.DashboardResponse{}

	var wg sync.WaitGroup
	var mu sync.Mutex

	wg.Add(4)

	go func() {
		defer wg.Done()
		result, byStatus := s.loadReservationsPanel(ctx, accessToken)
		mu.Lock()
		resp.Reservations = result
		resp.ReservationsByStatus = byStatus
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		result := s.loadPanel("halls", func() (int, error) {
			halls, err := s.client.ListHalls(ctx, nil, nil)
			return len(halls), err
		})
		mu.Lock()
		resp.Halls = result
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		result := s.loadPanel("sections", func() (int, error) {
			sections, err := s.client.ListSections(ctx, nil, nil, nil, nil)
			return len(sections), err
		})
		mu.Lock()
		resp.Sections = result
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		result := s.loadPanel("trainers", func() (int, error) {
			trainers, err := s.client.ListTrainers(ctx)
			return len(trainers), err
		})
		mu.Lock()
		resp.Trainers = result
		mu.Unlock()
	}()

	wg.Wait()

	return resp, nil
}

// loadPanel проганяє одне завантаження через стани панелі
func (s *Service) loadPanel(name string, fetch func() (int, error)) models.PanelResult {
	// Панель локальна і проходить стани строго idle -> loading -> success/error,
	// тому переходи тут не можуть повернути помилку
	panel := view.NewPanel()
	_ = panel.Begin()

	count, err := fetch()
	if err != nil {
		_ = panel.Fail(err)
		s.logger.Error("Dashboard: panel %s failed: %v", name, err)
		return models.PanelResult{State: string(panel.State()), Error: err.Error()}
	}

	_ = panel.Succeed()
	return models.PanelResult{State: string(panel.State()), Count: count}
}

// loadReservationsPanel панель бронювань з розбивкою за статусами
func (s *Service) loadReservationsPanel(ctx context.Context, accessToken string) (models.PanelResult, map[string]int) {
	panel := view.NewPanel()
	_ = panel.Begin()

	reservations, err := s.client.AllReservations(ctx, accessToken)
	if err != nil {
		_ = panel.Fail(err)
		s.logger.Error("Dashboard: panel reservations failed: %v", err)
		return models.PanelResult{State: string(panel.State()), Error: err.Error()}, nil
	}

	_ = panel.Succeed()

	byStatus := make(map[string]int)
	for i := range reservations {
		byStatus[reservations[i].ReservationStatus]++
	}

	return models.PanelResult{State: string(panel.State()), Count: len(reservations)}, byStatus
}

// mapError мапить помилки клієнта основного API на помилки сервісу
func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, sportapi.ErrUnauthorized):
		return ErrSessionExpired
	case errors.Is(err, sportapi.ErrForbidden):
		s.logger.Warn("%s: access denied", op)
		return ErrAccessDenied
	case errors.Is(err, sportapi.ErrBadRequest):
		s.logger.Warn("%s: rejected: %v", op, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		s.logger.Error("%s: core api error: %v", op, err)
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}

func validReservationStatus(status string) bool {
	switch domain.ReservationStatus(status) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return true
	}
	return false
}

func validPaymentStatus(status string) bool {
	switch domain.PaymentStatus(status) {
	case domain.PaymentUnpaid, domain.PaymentPaid, domain.PaymentError:
		return true
	}
	return false
}
