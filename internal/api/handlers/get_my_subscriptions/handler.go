package get_my_subscriptions

import (
	"errors"
	"net/http"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
	subscriptionsService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/subscriptions"
)

const (
	msgSessionExpired  = "сесія прострочена, увійдіть знову"
	msgCoreUnavailable = "сервіс тимчасово недоступний"
)

type Handler struct {
	subscriptions SubscriptionsService
	logger        Logger
}

func NewHandler(subscriptions SubscriptionsService, logger Logger) *Handler {
	return &Handler{subscriptions: subscriptions, logger: logger}
}

// Handle GET /api/v1/subscriptions/my
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.subscriptions.My(r.Context(), sess.AccessToken)
	if err != nil {
		switch {
		case errors.Is(err, subscriptionsService.ErrSessionExpired):
			handlers.RespondUnauthorized(w, msgSessionExpired)
		default:
			h.logger.Error("GET /subscriptions/my - failed for user=%d: %v", sess.UserID, err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
