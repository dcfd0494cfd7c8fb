package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/ptr"
)

func sectionReservation(res ReservationStatus, pay PaymentStatus) *Reservation {
	return &Reservation{SectionID: ptr.Ptr[int64](7), ReservationStatus: res, PaymentStatus: pay}
}

func hallReservation(res ReservationStatus, pay PaymentStatus) *Reservation {
	return &Reservation{HallID: ptr.Ptr[int64](3), ReservationStatus: res, PaymentStatus: pay}
}

func TestBookingStatusLabel_Section(t *testing.T) {
	tests := []struct {
		name string
		res  ReservationStatus
		pay  PaymentStatus
		want string
	}{
		{name: "cancelled wins over everything", res: StatusCancelled, pay: PaymentPaid, want: LabelCancelled},
		{name: "confirmed unpaid awaits on-site payment", res: StatusConfirmed, pay: PaymentUnpaid, want: LabelAwaitingPayment},
		{name: "confirmed paid", res: StatusConfirmed, pay: PaymentPaid, want: LabelConfirmed},
		{name: "confirmed error", res: StatusConfirmed, pay: PaymentError, want: LabelConfirmed},
		{name: "pending", res: StatusPending, pay: PaymentPaid, want: LabelAwaitingPayment},
		{name: "unknown status falls through", res: "archived", pay: PaymentPaid, want: LabelAwaitingPayment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BookingStatusLabel(sectionReservation(tt.res, tt.pay)))
		})
	}
}

func TestBookingStatusLabel_Hall(t *testing.T) {
	tests := []struct {
		name string
		res  ReservationStatus
		want string
	}{
		{name: "cancelled", res: StatusCancelled, want: LabelCancelled},
		{name: "confirmed", res: StatusConfirmed, want: LabelConfirmed},
		{name: "pending awaits admin", res: StatusPending, want: LabelAwaitingConfirmation},
		{name: "unknown status falls through", res: "draft", want: LabelAwaitingConfirmation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BookingStatusLabel(hallReservation(tt.res, PaymentUnpaid)))
		})
	}
}

func TestPaymentStatusLabel(t *testing.T) {
	tests := []struct {
		name    string
		usedSub bool
		pay     PaymentStatus
		want    string
	}{
		{name: "subscription overrides raw status", usedSub: true, pay: PaymentUnpaid, want: LabelPaidBySubscription},
		{name: "paid", pay: PaymentPaid, want: LabelPaid},
		{name: "error", pay: PaymentError, want: LabelPaymentError},
		{name: "unpaid", pay: PaymentUnpaid, want: LabelUnpaid},
		{name: "unknown falls to unpaid", pay: "refunded", want: LabelUnpaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sectionReservation(StatusConfirmed, tt.pay)
			if tt.usedSub {
				r.UsedSubscriptionID = ptr.Ptr[int64](12)
			}
			assert.Equal(t, tt.want, PaymentStatusLabel(r))
		})
	}
}

// Деривація має бути тотальною: будь-яка комбінація значень дає мітку і тон
func TestStatusDerivation_Total(t *testing.T) {
	statuses := []ReservationStatus{StatusPending, StatusConfirmed, StatusCancelled, "", "garbage"}
	payments := []PaymentStatus{PaymentUnpaid, PaymentPaid, PaymentError, "", "garbage"}

	for _, res := range statuses {
		for _, pay := range payments {
			for _, r := range []*Reservation{sectionReservation(res, pay), hallReservation(res, pay)} {
				booking := BookingStatusLabel(r)
				payment := PaymentStatusLabel(r)
				assert.NotEmpty(t, booking)
				assert.NotEmpty(t, payment)
				assert.Contains(t, []StatusTone{ToneSuccess, ToneWarning, ToneError}, ToneForLabel(booking))
				assert.Contains(t, []StatusTone{ToneSuccess, ToneWarning, ToneError}, ToneForLabel(payment))
			}
		}
	}
}

func TestToneForLabel(t *testing.T) {
	assert.Equal(t, ToneSuccess, ToneForLabel(LabelConfirmed))
	assert.Equal(t, ToneSuccess, ToneForLabel(LabelPaid))
	assert.Equal(t, ToneSuccess, ToneForLabel(LabelPaidBySubscription))
	assert.Equal(t, ToneWarning, ToneForLabel(LabelAwaitingPayment))
	assert.Equal(t, ToneWarning, ToneForLabel(LabelAwaitingConfirmation))
	assert.Equal(t, ToneWarning, ToneForLabel(LabelUnpaid))
	assert.Equal(t, ToneError, ToneForLabel(LabelCancelled))
	assert.Equal(t, ToneError, ToneForLabel(LabelPaymentError))
}

// Тон залежить тільки від мітки: різні сирі поля з однаковою міткою
// завжди дають однаковий колір
func TestToneIsFunctionOfLabelOnly(t *testing.T) {
	a := sectionReservation(StatusConfirmed, PaymentUnpaid) // -> Awaiting payment
	b := sectionReservation(StatusPending, PaymentPaid)     // -> Awaiting payment

	labelA, labelB := BookingStatusLabel(a), BookingStatusLabel(b)
	assert.Equal(t, labelA, labelB)
	assert.Equal(t, ToneForLabel(labelA), ToneForLabel(labelB))
}

func TestReservationKind(t *testing.T) {
	assert.Equal(t, KindSection, sectionReservation(StatusPending, PaymentUnpaid).Kind())
	assert.Equal(t, KindHall, hallReservation(StatusPending, PaymentUnpaid).Kind())
}
