package create_booking

import (
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/bookings/models"
)

// Request модель запиту на створення бронювання
type Request struct {
	AccessToken string // Access-токен основного API із сесії

	HallID     *int64 // ID залу (взаємовиключно із секцією)
	SectionID  *int64 // ID секції (взаємовиключно із залом)
	TimeslotID int64  // ID обраного слота
	Seats      int    // Кількість місць

	PaymentMethod      string // card | cash | bonus | subscription
	UseBonusPoints     bool   // Часткова оплата балами
	BonusPoints        int    // Кількість балів до списання
	UserSubscriptionID *int64 // Придбаний абонемент (для методу subscription)
}

// toServiceRequest конвертує запит у модель сервісу бронювань
func (r *Request) toServiceRequest() *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		HallID:             r.HallID,
		SectionID:          r.SectionID,
		TimeslotID:         r.TimeslotID,
		Seats:              r.Seats,
		PaymentMethod:      r.PaymentMethod,
		UseBonusPoints:     r.UseBonusPoints,
		BonusPoints:        r.BonusPoints,
		UserSubscriptionID: r.UserSubscriptionID,
	}
}

// Response модель відповіді зі створеним бронюванням
type Response = models.CreateBookingResponse
