package loyalty

import "errors"

var (
	// ErrInvalidPoints повертається при некоректній кількості балів
	ErrInvalidPoints = errors.New("invalid points amount")

	// ErrRedeemRejected повертається, коли основний API відхилив списання
	ErrRedeemRejected = errors.New("redeem rejected")

	// ErrSessionExpired повертається, коли access-токен основного API протух
	ErrSessionExpired = errors.New("session expired")

	// ErrUpstream повертається, коли основний API недоступний
	ErrUpstream = errors.New("core api unavailable")
)
