package create_booking

import "errors"

var (
	// ErrInvalidInput повертається при некоректних вхідних даних
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrNoTarget повертається, коли не вказано ні зал, ні секцію
	ErrNoTarget = errors.New("create_booking: hall or section is required")

	// ErrAmbiguousTarget повертається, коли вказано і зал, і секцію одночасно
	ErrAmbiguousTarget = errors.New("create_booking: hall and section are mutually exclusive")

	// ErrInvalidPaymentMethod повертається при невідомому способі оплати
	ErrInvalidPaymentMethod = errors.New("create_booking: invalid payment method")

	// ErrInvalidSeats повертається при некоректній кількості місць
	ErrInvalidSeats = errors.New("create_booking: invalid seats count")

	// ErrInvalidBonusPoints повертається при некоректній кількості бонусних балів
	ErrInvalidBonusPoints = errors.New("create_booking: invalid bonus points")

	// ErrSubscriptionRequired повертається, коли спосіб оплати "subscription"
	// без вказаного абонемента
	ErrSubscriptionRequired = errors.New("create_booking: user subscription is required")

	// ErrBookingRejected повертається, коли основний API відхилив бронювання
	ErrBookingRejected = errors.New("create_booking: booking rejected")

	// ErrSessionExpired повертається, коли сесія користувача протухла
	ErrSessionExpired = errors.New("create_booking: session expired")

	// ErrInternal повертається при внутрішніх помилках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
