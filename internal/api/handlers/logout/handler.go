package logout

import (
	"errors"
	"net/http"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
	sessionService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session"
)

type Handler struct {
	sessions SessionService
	logger   Logger
}

func NewHandler(sessions SessionService, logger Logger) *Handler {
	return &Handler{sessions: sessions, logger: logger}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	if err := h.sessions.Logout(r.Context(), sess.Token); err != nil && !errors.Is(err, sessionService.ErrSessionNotFound) {
		h.logger.Error("POST /auth/logout - failed for user=%d: %v", sess.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	clearSessionCookie(w)
	handlers.RespondNoContent(w)
}

// clearSessionCookie прибирає cookie сесії
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
