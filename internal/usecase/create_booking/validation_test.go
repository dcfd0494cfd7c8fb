package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/ptr"
)

func validSectionRequest() *Request {
	return &Request{
		AccessToken:   "token",
		SectionID:     ptr.Ptr(int64(3)),
		TimeslotID:    11,
		Seats:         2,
		PaymentMethod: "card",
	}
}

func TestValidateRequest_SectionOK(t *testing.T) {
	assert.NoError(t, validateRequest(validSectionRequest()))
}

func TestValidateRequest_HallOK(t *testing.T) {
	req := &Request{
		AccessToken:   "token",
		HallID:        ptr.Ptr(int64(5)),
		TimeslotID:    7,
		Seats:         1,
		PaymentMethod: "cash",
	}
	assert.NoError(t, validateRequest(req))
}

func TestValidateRequest_Target(t *testing.T) {
	req := validSectionRequest()
	req.SectionID = nil
	assert.ErrorIs(t, validateRequest(req), ErrNoTarget)

	req = validSectionRequest()
	req.HallID = ptr.Ptr(int64(5))
	assert.ErrorIs(t, validateRequest(req), ErrAmbiguousTarget)
}

func TestValidateRequest_MissingToken(t *testing.T) {
	req := validSectionRequest()
	req.AccessToken = ""
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateRequest_Timeslot(t *testing.T) {
	req := validSectionRequest()
	req.TimeslotID = 0
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateRequest_Seats(t *testing.T) {
	req := validSectionRequest()
	req.Seats = 0
	assert.ErrorIs(t, validateRequest(req), ErrInvalidSeats)

	req = validSectionRequest()
	req.Seats = 100
	assert.ErrorIs(t, validateRequest(req), ErrInvalidSeats)

	// Зал бронюється цілком, місця не обираються
	hallReq := &Request{
		AccessToken:   "token",
		HallID:        ptr.Ptr(int64(5)),
		TimeslotID:    7,
		Seats:         3,
		PaymentMethod: "card",
	}
	assert.ErrorIs(t, validateRequest(hallReq), ErrInvalidSeats)
}

func TestValidateRequest_PaymentMethod(t *testing.T) {
	req := validSectionRequest()
	req.PaymentMethod = "crypto"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidPaymentMethod)
}

func TestValidateRequest_Subscription(t *testing.T) {
	req := validSectionRequest()
	req.PaymentMethod = "subscription"
	assert.ErrorIs(t, validateRequest(req), ErrSubscriptionRequired)

	req.UserSubscriptionID = ptr.Ptr(int64(9))
	assert.NoError(t, validateRequest(req))

	// Абонемент без відповідного способу оплати
	req = validSectionRequest()
	req.UserSubscriptionID = ptr.Ptr(int64(9))
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateRequest_BonusPoints(t *testing.T) {
	req := validSectionRequest()
	req.UseBonusPoints = true
	req.BonusPoints = 0
	assert.ErrorIs(t, validateRequest(req), ErrInvalidBonusPoints)

	req.BonusPoints = 100001
	assert.ErrorIs(t, validateRequest(req), ErrInvalidBonusPoints)

	req.BonusPoints = 50
	assert.NoError(t, validateRequest(req))

	// Бали вказані, але прапорець не виставлено
	req = validSectionRequest()
	req.BonusPoints = 50
	assert.ErrorIs(t, validateRequest(req), ErrInvalidBonusPoints)

	// Бали не поєднуються з оплатою абонементом
	req = validSectionRequest()
	req.PaymentMethod = "subscription"
	req.UserSubscriptionID = ptr.Ptr(int64(9))
	req.UseBonusPoints = true
	req.BonusPoints = 50
	assert.ErrorIs(t, validateRequest(req), ErrInvalidBonusPoints)
}
