package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/psqlbuilder"
)

// Repository репозиторій сесій користувачів шлюзу.
// Сесія - єдиний стан, який шлюз тримає в себе: токен сесії в cookie
// клієнта мапиться на пару JWT-токенів основного API.
type Repository struct {
	db DBExecutor
}

// NewRepository створює новий екземпляр репозиторію сесій
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create зберігає нову сесію
func (r *Repository) Create(ctx context.Context, s *domain.Session) error {
	query, args, err := psqlbuilder.Insert("sessions").
		Columns(
			"token",
			"user_id",
			"is_staff",
			"access_token",
			"refresh_token",
			"expires_at",
		).
		Values(
			s.Token,
			s.UserID,
			s.IsStaff,
			s.AccessToken,
			s.RefreshToken,
			s.ExpiresAt,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time

	return nil
}

// GetByToken повертає сесію за токеном.
// Прострочені сесії не повертаються - для викликача вони не існують.
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	query, args, err := psqlbuilder.Select(
		"token",
		"user_id",
		"is_staff",
		"access_token",
		"refresh_token",
		"created_at",
		"expires_at",
	).
		From("sessions").
		Where(squirrel.Eq{"token": token}).
		Where(squirrel.Expr("expires_at > NOW()")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Session
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.Token,
		&s.UserID,
		&s.IsStaff,
		&s.AccessToken,
		&s.RefreshToken,
		&createdAt,
		&s.ExpiresAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan session: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time

	return &s, nil
}

// Delete видаляє сесію (вихід користувача)
func (r *Repository) Delete(ctx context.Context, token string) error {
	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteExpired прибирає прострочені сесії, повертає кількість видалених.
// Викликається фоновою горутиною за розкладом.
func (r *Repository) DeleteExpired(ctx context.Context) (int64, error) {
	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Expr("expires_at <= NOW()")).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// CountActive повертає кількість активних сесій (для метрик)
func (r *Repository) CountActive(ctx context.Context) (int64, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("sessions").
		Where(squirrel.Expr("expires_at > NOW()")).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
