package session

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
)

// SessionRepository інтерфейс репозиторію сесій
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

// CoreAPIClient інтерфейс клієнта основного API для аутентифікації
type CoreAPIClient interface {
	Login(ctx context.Context, creds sportapi.Credentials) (*sportapi.AuthResponse, error)
	Register(ctx context.Context, req sportapi.RegisterRequest) (*sportapi.AuthResponse, error)
	GetProfile(ctx context.Context, accessToken string) (*sportapi.UserProfile, error)
	UpdateProfile(ctx context.Context, accessToken string, upd sportapi.ProfileUpdate) (*sportapi.UserProfile, error)
}

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
