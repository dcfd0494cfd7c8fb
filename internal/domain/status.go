package domain

// StatusTone is the display color category of a derived status label
type StatusTone string

const (
	ToneSuccess StatusTone = "success"
	ToneWarning StatusTone = "warning"
	ToneError   StatusTone = "error"
)

// User-facing status labels. The history view shows exactly these strings.
const (
	LabelConfirmed            = "Confirmed"
	LabelAwaitingPayment      = "Awaiting payment"
	LabelAwaitingConfirmation = "Awaiting confirmation"
	LabelCancelled            = "Cancelled"

	LabelPaid               = "Paid"
	LabelPaidBySubscription = "Paid via subscription"
	LabelUnpaid             = "Unpaid"
	LabelPaymentError       = "Error"
)

// BookingStatusLabel derives the user-facing booking status.
//
// Section flow: a confirmed-but-unpaid reservation is still awaiting an
// on-site payment; anything not confirmed is awaiting payment too.
// Hall flow: pending reservations await admin confirmation.
// Unrecognized statuses fall to the default branch, never an error.
func BookingStatusLabel(r *Reservation) string {
	if r.ReservationStatus == StatusCancelled {
		return LabelCancelled
	}

	if r.Kind() == KindSection {
		if r.ReservationStatus == StatusConfirmed {
			if r.PaymentStatus == PaymentUnpaid {
				return LabelAwaitingPayment
			}
			return LabelConfirmed
		}
		return LabelAwaitingPayment
	}

	if r.ReservationStatus == StatusConfirmed {
		return LabelConfirmed
	}
	return LabelAwaitingConfirmation
}

// PaymentStatusLabel derives the user-facing payment status.
// A used subscription overrides the raw payment_status field.
func PaymentStatusLabel(r *Reservation) string {
	if r.PaidBySubscription() {
		return LabelPaidBySubscription
	}
	switch r.PaymentStatus {
	case PaymentPaid:
		return LabelPaid
	case PaymentError:
		return LabelPaymentError
	default:
		return LabelUnpaid
	}
}

// ToneForLabel maps a derived label to its display tone. Color depends on
// the label only, never on raw status fields, so label and color cannot
// disagree.
func ToneForLabel(label string) StatusTone {
	switch label {
	case LabelConfirmed, LabelPaid, LabelPaidBySubscription:
		return ToneSuccess
	case LabelAwaitingPayment, LabelAwaitingConfirmation, LabelUnpaid:
		return ToneWarning
	default:
		return ToneError
	}
}
