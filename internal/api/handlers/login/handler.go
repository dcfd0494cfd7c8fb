package login

import (
	"errors"
	"net/http"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
	sessionService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session/models"
)

const (
	msgInvalidRequestBody = "некоректне тіло запиту"
	msgMissingFields      = "email і пароль обов'язкові"
	msgInvalidCredentials = "невірний email або пароль"
	msgCoreUnavailable    = "сервіс тимчасово недоступний"
)

type Handler struct {
	sessions SessionService
	logger   Logger
}

func NewHandler(sessions SessionService, logger Logger) *Handler {
	return &Handler{sessions: sessions, logger: logger}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Email == "" || req.Password == "" {
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	result, err := h.sessions.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, sessionService.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
		case errors.Is(err, sessionService.ErrUpstream):
			h.logger.Error("POST /auth/login - core api unavailable: %v", err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		default:
			h.logger.Error("POST /auth/login - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	setSessionCookie(w, result.Token)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// setSessionCookie виставляє cookie з токеном сесії
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
