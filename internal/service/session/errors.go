package session

import "errors"

var (
	// ErrInvalidCredentials повертається при невірному email або паролі
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRegistrationRejected повертається, коли основний API відхилив реєстрацію
	ErrRegistrationRejected = errors.New("registration rejected")

	// ErrSessionNotFound повертається, коли сесію не знайдено або вона прострочена
	ErrSessionNotFound = errors.New("session not found")

	// ErrProfileRejected повертається, коли основний API відхилив дані профілю
	ErrProfileRejected = errors.New("profile update rejected")

	// ErrUpstream повертається, коли основний API недоступний
	ErrUpstream = errors.New("core api unavailable")

	// ErrInternal повертається при внутрішніх помилках сервісу
	ErrInternal = errors.New("service: internal error")
)
