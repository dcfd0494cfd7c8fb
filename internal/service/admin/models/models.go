package models

import (
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
	bookingModels "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/bookings/models"
)

// Request моделі

// ReservationFilter фільтр адмін-списку бронювань.
// Фільтрація виконується на боці шлюзу після отримання повного списку.
type ReservationFilter struct {
	Status        *string `json:"status,omitempty"`        // pending | confirmed | cancelled
	PaymentStatus *string `json:"paymentStatus,omitempty"` // unpaid | paid | error
	Date          *string `json:"date,omitempty"`          // YYYY-MM-DD
	Kind          *string `json:"kind,omitempty"`          // hall | section
}

// Matches перевіряє бронювання проти фільтра
func (f *ReservationFilter) Matches(r *domain.Reservation) bool {
	if f.Status != nil && string(r.ReservationStatus) != *f.Status {
		return false
	}
	if f.PaymentStatus != nil && string(r.PaymentStatus) != *f.PaymentStatus {
		return false
	}
	if f.Date != nil && r.TimeslotDate != *f.Date {
		return false
	}
	if f.Kind != nil && string(r.Kind()) != *f.Kind {
		return false
	}
	return true
}

// UpdateStatusRequest зміна статусів бронювання адміністратором
type UpdateStatusRequest struct {
	ReservationStatus *string `json:"reservationStatus,omitempty"`
	PaymentStatus     *string `json:"paymentStatus,omitempty"`
}

// ToWirePatch конвертує запит у wire-модель основного API
func (r *UpdateStatusRequest) ToWirePatch() sportapi.ReservationStatusPatch {
	return sportapi.ReservationStatusPatch{
		ReservationStatus: r.ReservationStatus,
		PaymentStatus:     r.PaymentStatus,
	}
}

// HallRequest створення/оновлення залу
type HallRequest struct {
	Name       string  `json:"name"`
	RoomNumber string  `json:"roomNumber"`
	EventType  string  `json:"eventType"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price"`
	IsActive   bool    `json:"isActive"`
}

// ToWirePayload конвертує запит у wire-модель основного API
func (r *HallRequest) ToWirePayload() sportapi.HallPayload {
	return sportapi.HallPayload{
		Name:       r.Name,
		RoomNumber: r.RoomNumber,
		EventType:  r.EventType,
		Capacity:   r.Capacity,
		Price:      r.Price,
		IsActive:   r.IsActive,
	}
}

// SectionRequest створення/оновлення секції
type SectionRequest struct {
	HallID           int64   `json:"hallId"`
	TrainerID        *int64  `json:"trainerId,omitempty"`
	SportType        string  `json:"sportType"`
	PreparationLevel string  `json:"preparationLevel"`
	MinAge           *int    `json:"minAge,omitempty"`
	MaxAge           *int    `json:"maxAge,omitempty"`
	Price            float64 `json:"price"`
	FreeSeats        int     `json:"freeSeats"`
}

// ToWirePayload конвертує запит у wire-модель основного API
func (r *SectionRequest) ToWirePayload() sportapi.SectionPayload {
	return sportapi.SectionPayload{
		Hall:             r.HallID,
		Trainer:          r.TrainerID,
		SportType:        r.SportType,
		PreparationLevel: r.PreparationLevel,
		MinAge:           r.MinAge,
		MaxAge:           r.MaxAge,
		Price:            r.Price,
		FreeSeats:        r.FreeSeats,
	}
}

// ScheduleSlotRequest додавання слота до розкладу секції
type ScheduleSlotRequest struct {
	SectionID int64  `json:"sectionId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToWirePayload конвертує запит у wire-модель основного API
func (r *ScheduleSlotRequest) ToWirePayload() sportapi.SchedulePayload {
	return sportapi.SchedulePayload{
		SectionID: r.SectionID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// Response моделі

// FilterReservations застосовує фільтр і будує відповіді зі статусами
func FilterReservations(reservations []sportapi.Reservation, filter ReservationFilter) *bookingModels.ReservationListResponse {
	resp := &bookingModels.ReservationListResponse{
		Reservations: make([]bookingModels.ReservationResponse, 0, len(reservations)),
	}
	for i := range reservations {
		r := bookingModels.ToDomainReservation(&reservations[i])
		if !filter.Matches(r) {
			continue
		}
		resp.Reservations = append(resp.Reservations, bookingModels.FromDomainReservation(r))
	}
	return resp
}

// PanelResult результат завантаження однієї панелі дашборду
type PanelResult struct {
	State string `json:"state"` // success | error
	Count int    `json:"count"`
	Error string `json:"error,omitempty"`
}

// DashboardResponse зведення для адмін-дашборду
type DashboardResponse struct {
	Reservations PanelResult `json:"reservations"`
	Halls        PanelResult `json:"halls"`
	Sections     PanelResult `json:"sections"`
	Trainers     PanelResult `json:"trainers"`

	// Розбивка бронювань за статусами, заповнюється лише
	// при успішній панелі бронювань
	ReservationsByStatus map[string]int `json:"reservationsByStatus,omitempty"`
}
