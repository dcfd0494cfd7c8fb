package get_availability

import "errors"

var (
	// ErrInvalidInput повертається при некоректних вхідних даних
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrNoTarget повертається, коли не вказано ні зал, ні секцію
	ErrNoTarget = errors.New("get_availability: hall or section is required")

	// ErrAmbiguousTarget повертається, коли вказано і зал, і секцію одночасно
	ErrAmbiguousTarget = errors.New("get_availability: hall and section are mutually exclusive")

	// ErrTargetNotFound повертається, коли зал або секцію не знайдено
	ErrTargetNotFound = errors.New("get_availability: target not found")

	// ErrInternal повертається при внутрішніх помилках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
