package list_subscriptions

import (
	"net/http"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
)

const msgCoreUnavailable = "сервіс тимчасово недоступний"

type Handler struct {
	subscriptions SubscriptionsService
	logger        Logger
}

func NewHandler(subscriptions SubscriptionsService, logger Logger) *Handler {
	return &Handler{subscriptions: subscriptions, logger: logger}
}

// Handle GET /api/v1/subscriptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.subscriptions.List(r.Context())
	if err != nil {
		h.logger.Error("GET /subscriptions - failed: %v", err)
		handlers.RespondBadGateway(w, msgCoreUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
