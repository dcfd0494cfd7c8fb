package admin

import "errors"

var (
	// ErrReservationNotFound повертається, коли бронювання не знайдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrHallNotFound повертається, коли зал не знайдено
	ErrHallNotFound = errors.New("hall not found")

	// ErrSectionNotFound повертається, коли секцію не знайдено
	ErrSectionNotFound = errors.New("section not found")

	// ErrInvalidStatus повертається при недопустимому статусі бронювання
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidInput повертається при некоректних вхідних даних
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAccessDenied повертається, коли основний API відмовив у правах
	ErrAccessDenied = errors.New("access denied")

	// ErrSessionExpired повертається, коли access-токен основного API протух
	ErrSessionExpired = errors.New("session expired")

	// ErrUpstream повертається, коли основний API недоступний
	ErrUpstream = errors.New("core api unavailable")
)
