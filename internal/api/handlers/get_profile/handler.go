package get_profile

import (
	"errors"
	"net/http"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
	sessionService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session"
)

const (
	msgSessionExpired  = "сесія прострочена, увійдіть знову"
	msgCoreUnavailable = "сервіс тимчасово недоступний"
)

type Handler struct {
	sessions SessionService
	logger   Logger
}

func NewHandler(sessions SessionService, logger Logger) *Handler {
	return &Handler{sessions: sessions, logger: logger}
}

// Handle GET /api/v1/auth/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	profile, err := h.sessions.GetProfile(r.Context(), sess)
	if err != nil {
		switch {
		case errors.Is(err, sessionService.ErrSessionNotFound):
			handlers.RespondUnauthorized(w, msgSessionExpired)
		case errors.Is(err, sessionService.ErrUpstream):
			h.logger.Error("GET /auth/profile - core api unavailable: %v", err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		default:
			h.logger.Error("GET /auth/profile - failed for user=%d: %v", sess.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile)
}
