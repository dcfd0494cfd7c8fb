package notifications

import "errors"

var (
	// ErrNotificationNotFound повертається, коли сповіщення не знайдено
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrSessionExpired повертається, коли access-токен основного API протух
	ErrSessionExpired = errors.New("session expired")

	// ErrUpstream повертається, коли основний API недоступний
	ErrUpstream = errors.New("core api unavailable")
)
