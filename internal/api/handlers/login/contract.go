package login

import (
	"context"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session/models"
)

type SessionService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
