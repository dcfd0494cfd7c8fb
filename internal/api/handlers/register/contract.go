package register

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session/models"
)

type SessionService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
