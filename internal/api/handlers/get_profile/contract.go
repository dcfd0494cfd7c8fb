package get_profile

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session/models"
)

type SessionService interface {
	GetProfile(ctx context.Context, sess *domain.Session) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
