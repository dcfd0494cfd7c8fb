package get_loyalty

import (
	"errors"
	"net/http"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
	loyaltyService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/loyalty"
)

const (
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

// Handle GET /api/v1/loyalty/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.loyalty.Get(r.Context(), sess.AccessToken)
	if err != nil {
		switch {
		case errors.Is(err, loyaltyService.ErrSessionExpired):
			handlers.RespondUnauthorized(w, msgSessionExpired)
		default:
			h.logger.Error("GET /loyalty/me - failed for user=%d: %v", sess.UserID, err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
