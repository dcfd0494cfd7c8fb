package session

import (
	"context"
	"database/sql"
)

// DBExecutor інтерфейс виконання запитів до БД.
// Реалізується *sql.DB та *sql.Tx.
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
