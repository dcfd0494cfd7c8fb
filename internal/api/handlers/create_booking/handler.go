package create_booking

import (
	"errors"
	"net/http"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
	createBooking "github.com/SolomiaSydoryk/sportcenter-gateway/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некоректне тіло запиту"
	msgNoTarget             = "вкажіть hallId або sectionId"
	msgAmbiguousTarget      = "hallId і sectionId взаємовиключні"
	msgInvalidPaymentMethod = "невідомий спосіб оплати"
	msgInvalidSeats         = "некоректна кількість місць"
	msgInvalidBonusPoints   = "некоректна кількість бонусних балів"
	msgSubscriptionRequired = "для оплати абонементом вкажіть userSubscriptionId"
	msgBookingRejected      = "бронювання відхилено"
	msgSessionExpired       = "сесія прострочена, увійдіть знову"
	msgInvalidInput         = "некоректні вхідні дані"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sess))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrNoTarget):
			handlers.RespondBadRequest(w, msgNoTarget)

		case errors.Is(err, createBooking.ErrAmbiguousTarget):
			handlers.RespondBadRequest(w, msgAmbiguousTarget)

		case errors.Is(err, createBooking.ErrInvalidPaymentMethod):
			handlers.RespondBadRequest(w, msgInvalidPaymentMethod)

		case errors.Is(err, createBooking.ErrInvalidSeats):
			handlers.RespondBadRequest(w, msgInvalidSeats)

		case errors.Is(err, createBooking.ErrInvalidBonusPoints):
			handlers.RespondBadRequest(w, msgInvalidBonusPoints)

		case errors.Is(err, createBooking.ErrSubscriptionRequired):
			handlers.RespondBadRequest(w, msgSubscriptionRequired)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrBookingRejected):
			h.logger.Warn("POST /bookings - rejected for user=%d: %v", sess.UserID, err)
			handlers.RespondError(w, http.StatusConflict, msgBookingRejected)

		case errors.Is(err, createBooking.ErrSessionExpired):
			handlers.RespondUnauthorized(w, msgSessionExpired)

		default:
			h.logger.Error("POST /bookings - failed for user=%d: %v", sess.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - reservation id=%d created for user=%d",
		result.Reservation.ID, sess.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
