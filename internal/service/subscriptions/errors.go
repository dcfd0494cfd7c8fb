package subscriptions

import "errors"

var (
	// ErrSubscriptionNotFound повертається, коли абонемент не знайдено
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrPurchaseRejected повертається, коли основний API відхилив покупку
	ErrPurchaseRejected = errors.New("purchase rejected")

	// ErrSessionExpired повертається, коли access-токен основного API протух
	ErrSessionExpired = errors.New("session expired")

	// ErrUpstream повертається, коли основний API недоступний
	ErrUpstream = errors.New("core api unavailable")
)
