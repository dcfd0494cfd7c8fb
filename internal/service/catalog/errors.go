package catalog

import "errors"

var (
	// ErrHallNotFound повертається, коли зал не знайдено
	ErrHallNotFound = errors.New("hall not found")

	// ErrSectionNotFound повертається, коли секцію не знайдено
	ErrSectionNotFound = errors.New("section not found")

	// ErrUpstream повертається, коли основний API недоступний
	ErrUpstream = errors.New("core api unavailable")

	// ErrInternal повертається при внутрішніх помилках сервісу
	ErrInternal = errors.New("service: internal error")
)
