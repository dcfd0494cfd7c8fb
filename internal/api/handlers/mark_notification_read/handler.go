package mark_notification_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
	notificationsService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/notifications"
)

const (
	msgInvalidID            = "некоректний ідентифікатор сповіщення"
	msgNotificationNotFound = "сповіщення не знайдено"
	msgSessionExpired       = "сесія прострочена, увійдіть знову"
	msgCoreUnavailable      = "сервіс тимчасово недоступний"
)

type Handler struct {
	notifications NotificationsService
	logger        Logger
}

func NewHandler(notifications NotificationsService, logger Logger) *Handler {
	return &Handler{notifications: notifications, logger: logger}
}

// HandleOne PATCH /api/v1/notifications/{id}/read
func (h *Handler) HandleOne(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.notifications.MarkRead(r.Context(), sess.AccessToken, id); err != nil {
		switch {
		case errors.Is(err, notificationsService.ErrNotificationNotFound):
			handlers.RespondNotFound(w, msgNotificationNotFound)
		case errors.Is(err, notificationsService.ErrSessionExpired):
			handlers.RespondUnauthorized(w, msgSessionExpired)
		default:
			h.logger.Error("PATCH /notifications/{id}/read - failed for id=%d, user=%d: %v", id, sess.UserID, err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		}
		return
	}

	handlers.RespondNoContent(w)
}

// HandleAll PATCH /api/v1/notifications/read-all
func (h *Handler) HandleAll(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	if err := h.notifications.MarkAllRead(r.Context(), sess.AccessToken); err != nil {
		switch {
		case errors.Is(err, notificationsService.ErrSessionExpired):
			handlers.RespondUnauthorized(w, msgSessionExpired)
		default:
			h.logger.Error("PATCH /notifications/read-all - failed for user=%d: %v", sess.UserID, err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		}
		return
	}

	handlers.RespondNoContent(w)
}
