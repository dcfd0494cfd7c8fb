package create_booking

import (
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	createBooking "github.com/SolomiaSydoryk/sportcenter-gateway/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
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

// ToUseCaseRequest конвертує HTTP запит у модель use case.
// Для залу кількість місць не передається - підставляємо одне.
func (r *CreateBookingRequest) ToUseCaseRequest(sess *domain.Session) *createBooking.Request {
	seats := r.Seats
	if r.HallID != nil && seats == 0 {
		seats = 1
	}

	return &createBooking.Request{
		AccessToken:        sess.AccessToken,
		HallID:             r.HallID,
		SectionID:          r.SectionID,
		TimeslotID:         r.TimeslotID,
		Seats:              seats,
		PaymentMethod:      r.PaymentMethod,
		UseBonusPoints:     r.UseBonusPoints,
		BonusPoints:        r.BonusPoints,
		UserSubscriptionID: r.UserSubscriptionID,
	}
}
