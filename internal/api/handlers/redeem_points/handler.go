package redeem_points

import (
	"errors"
	"net/http"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
	loyaltyService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/loyalty"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/loyalty/models"
)

const (
	msgInvalidBody     = "некоректне тіло запиту"
	msgInvalidPoints   = "некоректна кількість балів"
	msgRedeemRejected  = "списання балів відхилено"
	msgSessionExpired  = "сесія прострочена, увійдіть знову"
	msgCoreUnavailable = "сервіс тимчасово недоступний"
)

type Handler struct {
	loyalty LoyaltyService
	logger  Logger
}

func NewHandler(loyalty LoyaltyService, logger Logger) *Handler {
	return &Handler{loyalty: loyalty, logger: logger}
}

// Handle POST /api/v1/loyalty/redeem
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req models.RedeemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /loyalty/redeem - invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.loyalty.Redeem(r.Context(), sess.AccessToken, &req)
	if err != nil {
		switch {
		case errors.Is(err, loyaltyService.ErrInvalidPoints):
			handlers.RespondBadRequest(w, msgInvalidPoints)
		case errors.Is(err, loyaltyService.ErrRedeemRejected):
			handlers.RespondBadRequest(w, msgRedeemRejected)
		case errors.Is(err, loyaltyService.ErrSessionExpired):
			handlers.RespondUnauthorized(w, msgSessionExpired)
		default:
			h.logger.Error("POST /loyalty/redeem - failed for user=%d: %v", sess.UserID, err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
