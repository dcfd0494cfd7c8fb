package session

import "errors"

var (
	// ErrSessionNotFound повертається, коли сесію не знайдено або вона прострочена
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrBuildQuery повертається при помилці побудови SQL запиту
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery повертається при помилці виконання SQL запиту
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow повертається при помилці сканування результату запиту
	ErrScanRow = errors.New("session.repository: failed to scan row")
)
