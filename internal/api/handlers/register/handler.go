package register

import (
	"errors"
	"net/http"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	sessionService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session/models"
)

const (
	msgInvalidRequestBody = "некоректне тіло запиту"
	msgMissingFields      = "email, ім'я, прізвище і пароль обов'язкові"
	msgRejected           = "реєстрацію відхилено"
	msgCoreUnavailable    = "сервіс тимчасово недоступний"
)

type Handler struct {
	sessions SessionService
	logger   Logger
}

func NewHandler(sessions SessionService, logger Logger) *Handler {
	return &Handler{sessions: sessions, logger: logger}
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Email == "" || req.FirstName == "" || req.LastName == "" || req.Password == "" {
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	result, err := h.sessions.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, sessionService.ErrRegistrationRejected):
			h.logger.Warn("POST /auth/register - rejected: %v", err)
			handlers.RespondBadRequest(w, msgRejected)
		case errors.Is(err, sessionService.ErrUpstream):
			h.logger.Error("POST /auth/register - core api unavailable: %v", err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		default:
			h.logger.Error("POST /auth/register - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
