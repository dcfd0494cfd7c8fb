package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
	bookingsService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/bookings"
)

const (
	msgInvalidID           = "некоректний ідентифікатор бронювання"
	msgReservationNotFound = "бронювання не знайдено"
	msgAccessDenied        = "бронювання належить іншому користувачу"
	msgCannotCancel        = "бронювання вже скасовано"
	msgSessionExpired      = "сесія прострочена, увійдіть знову"
	msgCoreUnavailable     = "сервіс тимчасово недоступний"
)

type Handler struct {
	bookings BookingsService
	logger   Logger
}

func NewHandler(bookings BookingsService, logger Logger) *Handler {
	return &Handler{bookings: bookings, logger: logger}
}

// Handle POST /api/v1/bookings/{id}/cancel
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

	result, err := h.bookings.CancelBooking(r.Context(), sess.AccessToken, id)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)
		case errors.Is(err, bookingsService.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, bookingsService.ErrCannotCancel):
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)
		case errors.Is(err, bookingsService.ErrSessionExpired):
			handlers.RespondUnauthorized(w, msgSessionExpired)
		default:
			h.logger.Error("POST /bookings/{id}/cancel - failed for id=%d, user=%d: %v", id, sess.UserID, err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancel - reservation id=%d cancelled by user=%d", id, sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
