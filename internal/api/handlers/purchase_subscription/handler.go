package purchase_subscription

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
	subscriptionsService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/subscriptions"
)

const (
	msgInvalidID            = "некоректний ідентифікатор абонемента"
	msgSubscriptionNotFound = "абонемент не знайдено"
	msgPurchaseRejected     = "покупку відхилено"
	msgSessionExpired       = "сесія прострочена, увійдіть знову"
	msgCoreUnavailable      = "сервіс тимчасово недоступний"
)

type Handler struct {
	subscriptions SubscriptionsService
	logger        Logger
}

func NewHandler(subscriptions SubscriptionsService, logger Logger) *Handler {
	return &Handler{subscriptions: subscriptions, logger: logger}
}

// Handle POST /api/v1/subscriptions/{id}/purchase
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.subscriptions.Purchase(r.Context(), sess.AccessToken, id)
	if err != nil {
		switch {
		case errors.Is(err, subscriptionsService.ErrSubscriptionNotFound):
			handlers.RespondNotFound(w, msgSubscriptionNotFound)
		case errors.Is(err, subscriptionsService.ErrPurchaseRejected):
			h.logger.Warn("POST /subscriptions/{id}/purchase - rejected for user=%d: %v", sess.UserID, err)
			handlers.RespondBadRequest(w, msgPurchaseRejected)
		case errors.Is(err, subscriptionsService.ErrSessionExpired):
			handlers.RespondUnauthorized(w, msgSessionExpired)
		default:
			h.logger.Error("POST /subscriptions/{id}/purchase - failed for id=%d, user=%d: %v", id, sess.UserID, err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		}
		return
	}

	h.logger.Info("POST /subscriptions/{id}/purchase - subscription id=%d purchased by user=%d", id, sess.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
