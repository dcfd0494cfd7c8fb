package domain

import (
	"time"

	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// PaymentStatus represents the payment state of a reservation
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
	PaymentError  PaymentStatus = "error"
)

// PaymentMethod is the instrument the user selects at booking time.
// Processing is owned by the core API; the gateway only validates and forwards.
type PaymentMethod string

const (
	MethodCard         PaymentMethod = "card"
	MethodCash         PaymentMethod = "cash"
	MethodBonus        PaymentMethod = "bonus"
	MethodSubscription PaymentMethod = "subscription"
)

// Reservation is a booking record owned by the core API. Exactly one of
// HallID/SectionID is set and discriminates the display branch.
type Reservation struct {
	ID        int64
	HallID    *int64
	SectionID *int64

	TimeslotID    int64
	TimeslotDate  string // YYYY-MM-DD
	TimeslotStart types.TimeString
	TimeslotEnd   types.TimeString

	ReservationStatus  ReservationStatus
	PaymentStatus      PaymentStatus
	UsedSubscriptionID *int64

	Price float64
	Seats int

	// Denormalized display data from the core API.
	HallName                string
	HallEventType           string
	SectionSportType        string
	SectionPreparationLevel string
	SectionTrainerName      *string
	CustomerFirstName       string
	CustomerLastName        string
	CustomerEmail           string

	CreatedAt time.Time
}

// Kind returns the booking flow this reservation belongs to
func (r *Reservation) Kind() BookingKind {
	if r.SectionID != nil {
		return KindSection
	}
	return KindHall
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.ReservationStatus == StatusCancelled
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.ReservationStatus == StatusPending || r.ReservationStatus == StatusConfirmed
}

// PaidBySubscription returns true if the reservation was covered by a subscription
func (r *Reservation) PaidBySubscription() bool {
	return r.UsedSubscriptionID != nil
}
