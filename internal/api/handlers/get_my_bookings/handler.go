package get_my_bookings

import (
	"errors"
	"net/http"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
	bookingsService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/bookings"
)

const (
	msgSessionExpired  = "сесія прострочена, увійдіть знову"
	msgCoreUnavailable = "сервіс тимчасово недоступний"
)

type Handler struct {
	bookings BookingsService
	logger   Logger
}

func NewHandler(bookings BookingsService, logger Logger) *Handler {
	return &Handler{bookings: bookings, logger: logger}
}

// Handle GET /api/v1/bookings/my
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.bookings.MyBookings(r.Context(), sess.AccessToken)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrSessionExpired):
			handlers.RespondUnauthorized(w, msgSessionExpired)
		default:
			h.logger.Error("GET /bookings/my - failed for user=%d: %v", sess.UserID, err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
