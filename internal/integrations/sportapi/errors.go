package sportapi

import "errors"

var (
	// ErrUnauthorized повертається, коли токен основного API недійсний або прострочений
	ErrUnauthorized = errors.New("sportapi client: unauthorized")

	// ErrForbidden повертається, коли у користувача немає прав на операцію
	ErrForbidden = errors.New("sportapi client: forbidden")

	// ErrNotFound повертається, коли ресурс не знайдено в основному API
	ErrNotFound = errors.New("sportapi client: not found")

	// ErrBadRequest повертається, коли основний API відхилив запит як некоректний
	ErrBadRequest = errors.New("sportapi client: bad request")

	// ErrUnavailable повертається при транспортних збоях (недоступність, таймаут)
	ErrUnavailable = errors.New("sportapi client: core API unavailable")

	// ErrInvalidResponse повертається при некоректній відповіді основного API
	ErrInvalidResponse = errors.New("sportapi client: invalid response")

	// ErrInternal повертається при внутрішніх помилках клієнта
	ErrInternal = errors.New("sportapi client: internal error")
)
