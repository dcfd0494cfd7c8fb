package bookings

import "errors"

var (
	// ErrReservationNotFound повертається, коли бронювання не знайдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied повертається, коли бронювання належить іншому користувачу
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel повертається, коли бронювання вже скасовано
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrBookingRejected повертається, коли основний API відхилив намір бронювання
	ErrBookingRejected = errors.New("booking rejected")

	// ErrSessionExpired повертається, коли access-токен основного API протух
	ErrSessionExpired = errors.New("session expired")

	// ErrUpstream повертається, коли основний API недоступний
	ErrUpstream = errors.New("core api unavailable")

	// ErrInternal повертається при внутрішніх помилках сервісу
	ErrInternal = errors.New("service: internal error")
)
