package update_profile

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
	msgRejected           = "оновлення профілю відхилено"
	msgSessionExpired     = "сесія прострочена, увійдіть знову"
	msgCoreUnavailable    = "сервіс тимчасово недоступний"
)

type Handler struct {
	sessions SessionService
	logger   Logger
}

func NewHandler(sessions SessionService, logger Logger) *Handler {
	return &Handler{sessions: sessions, logger: logger}
}

// Handle PUT /api/v1/auth/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /auth/profile - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	profile, err := h.sessions.UpdateProfile(r.Context(), sess, &req)
	if err != nil {
		switch {
		case errors.Is(err, sessionService.ErrSessionNotFound):
			handlers.RespondUnauthorized(w, msgSessionExpired)
		case errors.Is(err, sessionService.ErrProfileRejected):
			h.logger.Warn("PUT /auth/profile - rejected for user=%d: %v", sess.UserID, err)
			handlers.RespondBadRequest(w, msgRejected)
		case errors.Is(err, sessionService.ErrUpstream):
			h.logger.Error("PUT /auth/profile - core api unavailable: %v", err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		default:
			h.logger.Error("PUT /auth/profile - failed for user=%d: %v", sess.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile)
}
