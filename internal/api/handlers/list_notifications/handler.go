package list_notifications

import (
	"errors"
	"net/http"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
	notificationsService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/notifications"
)

const (
	msgSessionExpired  = "сесія прострочена, увійдіть знову"
	msgCoreUnavailable = "сервіс тимчасово недоступний"
)

type Handler struct {
	notifications NotificationsService
	logger        Logger
}

func NewHandler(notifications NotificationsService, logger Logger) *Handler {
	return &Handler{notifications: notifications, logger: logger}
}

// Handle GET /api/v1/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.notifications.List(r.Context(), sess.AccessToken)
	if err != nil {
		switch {
		case errors.Is(err, notificationsService.ErrSessionExpired):
			handlers.RespondUnauthorized(w, msgSessionExpired)
		default:
			h.logger.Error("GET /notifications - failed for user=%d: %v", sess.UserID, err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
