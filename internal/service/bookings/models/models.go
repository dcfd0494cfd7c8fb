package models

import (
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
)

// Request моделі

// CreateBookingRequest намір бронювання від клієнта шлюзу
type CreateBookingRequest struct {
	HallID             *int64 `json:"hallId,omitempty"`
	SectionID          *int64 `json:"sectionId,omitempty"`
	TimeslotID         int64  `json:"timeslotId"`
	Seats              int    `json:"seats"`
	PaymentMethod      string `json:"paymentMethod"`
	UseBonusPoints     bool   `json:"useBonusPoints,omitempty"`
	BonusPoints        int    `json:"bonusPoints,omitempty"`
	UserSubscriptionID *int64 `json:"userSubscriptionId,omitempty"`
}

// ToWireRequest конвертує намір у wire-модель основного API
func (r *CreateBookingRequest) ToWireRequest() sportapi.CreateBookingRequest {
	return sportapi.CreateBookingRequest{
		Hall:               r.HallID,
		Section:            r.SectionID,
		Timeslot:           r.TimeslotID,
		Seats:              r.Seats,
		PaymentMethod:      r.PaymentMethod,
		UseBonusPoints:     r.UseBonusPoints,
		BonusPoints:        r.BonusPoints,
		UserSubscriptionID: r.UserSubscriptionID,
	}
}

// Response моделі

// ReservationResponse бронювання з готовими для відображення статусами.
// Label і Tone обчислюються шлюзом з сирих статусів основного API.
type ReservationResponse struct {
	ID         int64   `json:"id"`
	Kind       string  `json:"kind"` // "hall" | "section"
	HallID     *int64  `json:"hallId,omitempty"`
	SectionID  *int64  `json:"sectionId,omitempty"`
	TimeslotID int64   `json:"timeslotId"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Seats      int     `json:"seats"`
	Price      float64 `json:"price"`

	ReservationStatus string `json:"reservationStatus"`
	PaymentStatus     string `json:"paymentStatus"`

	StatusLabel  string `json:"statusLabel"`
	StatusTone   string `json:"statusTone"`
	PaymentLabel string `json:"paymentLabel"`
	PaymentTone  string `json:"paymentTone"`

	CanCancel bool `json:"canCancel"`

	HallName                string  `json:"hallName,omitempty"`
	HallEventType           string  `json:"hallEventType,omitempty"`
	SectionSportType        string  `json:"sectionSportType,omitempty"`
	SectionPreparationLevel string  `json:"sectionPreparationLevel,omitempty"`
	SectionTrainerName      *string `json:"sectionTrainerName,omitempty"`

	CustomerFirstName string `json:"customerFirstName,omitempty"`
	CustomerLastName  string `json:"customerLastName,omitempty"`
	CustomerEmail     string `json:"customerEmail,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// ReservationListResponse список бронювань
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// CreateBookingResponse підтвердження створеного бронювання
type CreateBookingResponse struct {
	Message     string              `json:"message"`
	Reservation ReservationResponse `json:"reservation"`
}

// ToDomainReservation конвертує wire-модель бронювання в domain
func ToDomainReservation(r *sportapi.Reservation) *domain.Reservation {
	return &domain.Reservation{
		ID:                 r.ID,
		HallID:             r.Hall,
		SectionID:          r.Section,
		TimeslotID:         r.Timeslot,
		TimeslotDate:       r.TimeslotDate,
		TimeslotStart:      r.TimeslotStartTime,
		TimeslotEnd:        r.TimeslotEndTime,
		ReservationStatus:  domain.ReservationStatus(r.ReservationStatus),
		PaymentStatus:      domain.PaymentStatus(r.PaymentStatus),
		UsedSubscriptionID: r.UsedSubscription,
		Price:              r.Price,
		Seats:              r.Seats,

		HallName:                r.HallName,
		HallEventType:           r.HallEventType,
		SectionSportType:        r.SectionSportType,
		SectionPreparationLevel: r.SectionPreparationLevel,
		SectionTrainerName:      r.SectionTrainerName,
		CustomerFirstName:       r.CustomerFirstName,
		CustomerLastName:        r.CustomerLastName,
		CustomerEmail:           r.CustomerEmail,

		CreatedAt: r.CreatedAt,
	}
}

// FromDomainReservation будує відповідь з обчисленими статусами
func FromDomainReservation(r *domain.Reservation) ReservationResponse {
	statusLabel := domain.BookingStatusLabel(r)
	paymentLabel := domain.PaymentStatusLabel(r)

	return ReservationResponse{
		ID:         r.ID,
		Kind:       string(r.Kind()),
		HallID:     r.HallID,
		SectionID:  r.SectionID,
		TimeslotID: r.TimeslotID,
		Date:       r.TimeslotDate,
		StartTime:  r.TimeslotStart.String(),
		EndTime:    r.TimeslotEnd.String(),
		Seats:      r.Seats,
		Price:      r.Price,

		ReservationStatus: string(r.ReservationStatus),
		PaymentStatus:     string(r.PaymentStatus),

		StatusLabel:  statusLabel,
		StatusTone:   string(domain.ToneForLabel(statusLabel)),
		PaymentLabel: paymentLabel,
		PaymentTone:  string(domain.ToneForLabel(paymentLabel)),

		CanCancel: r.CanBeCancelled(),

		HallName:                r.HallName,
		HallEventType:           r.HallEventType,
		SectionSportType:        r.SectionSportType,
		SectionPreparationLevel: r.SectionPreparationLevel,
		SectionTrainerName:      r.SectionTrainerName,

		CustomerFirstName: r.CustomerFirstName,
		CustomerLastName:  r.CustomerLastName,
		CustomerEmail:     r.CustomerEmail,

		CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// FromWireReservation конвертує wire-модель одразу у відповідь
func FromWireReservation(r *sportapi.Reservation) ReservationResponse {
	return FromDomainReservation(ToDomainReservation(r))
}

// FromWireReservationList конвертує список бронювань
func FromWireReservationList(reservations []sportapi.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{Reservations: make([]ReservationResponse, 0, len(reservations))}
	for i := range reservations {
		resp.Reservations = append(resp.Reservations, FromWireReservation(&reservations[i]))
	}
	return resp
}

// ToDomainTimeSlot конвертує wire-слот у domain
func ToDomainTimeSlot(s *sportapi.TimeSlot) domain.TimeSlot {
	return domain.TimeSlot{
		ID:             s.ID,
		Date:           s.Date,
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		AvailableSeats: s.AvailableSeats,
		TotalSeats:     s.TotalSeats,
		IsBooked:       s.IsBooked,
		HasSections:    s.HasSections,
	}
}

// ToDomainTimeSlots конвертує список слотів
func ToDomainTimeSlots(slots []sportapi.TimeSlot) []domain.TimeSlot {
	out := make([]domain.TimeSlot, 0, len(slots))
	for i := range slots {
		out = append(out, ToDomainTimeSlot(&slots[i]))
	}
	return out
}
