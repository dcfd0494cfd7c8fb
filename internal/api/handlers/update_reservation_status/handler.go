package update_reservation_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
	adminService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/admin"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/admin/models"
)

const (
	msgInvalidID           = "некоректний ідентифікатор бронювання"
	msgInvalidBody         = "некоректне тіло запиту"
	msgInvalidStatus       = "недопустимий статус бронювання"
	msgNothingToUpdate     = "не вказано жодного статусу для оновлення"
	msgReservationNotFound = "бронювання не знайдено"
	msgAccessDenied        = "недостатньо прав для зміни статусу бронювання"
	msgSessionExpired      = "сесія прострочена, увійдіть знову"
	msgCoreUnavailable     = "сервіс тимчасово недоступний"
)

type Handler struct {
	admin  AdminService
	logger Logger
}

func NewHandler(admin AdminService, logger Logger) *Handler {
	return &Handler{admin: admin, logger: logger}
}

// Handle PATCH /api/v1/admin/reservations/{id}/status
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

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/status - invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.admin.UpdateReservationStatus(r.Context(), sess.AccessToken, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, adminService.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, adminService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgNothingToUpdate)
		case errors.Is(err, adminService.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)
		case errors.Is(err, adminService.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, adminService.ErrSessionExpired):
			handlers.RespondUnauthorized(w, msgSessionExpired)
		default:
			h.logger.Error("PATCH /admin/reservations/{id}/status - failed for id=%d, user=%d: %v", id, sess.UserID, err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
