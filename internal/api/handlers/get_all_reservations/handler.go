package get_all_reservations

import (
	"errors"
	"net/http"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
	adminService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/admin"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/admin/models"
	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/ptr"
)

const (
	msgAccessDenied    = "недостатньо прав для перегляду всіх бронювань"
	msgSessionExpired  = "сесія прострочена, увійдіть знову"
	msgCoreUnavailable = "сервіс тимчасово недоступний"
)

type Handler struct {
	admin  AdminService
	logger Logger
}

func NewHandler(admin AdminService, logger Logger) *Handler {
	return &Handler{admin: admin, logger: logger}
}

// Handle GET /api/v1/admin/reservations?status=...&paymentStatus=...&date=...&kind=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var filter models.ReservationFilter
	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		filter.Status = ptr.Ptr(status)
	}
	if paymentStatus := query.Get("paymentStatus"); paymentStatus != "" {
		filter.PaymentStatus = ptr.Ptr(paymentStatus)
	}
	if date := query.Get("date"); date != "" {
		filter.Date = ptr.Ptr(date)
	}
	if kind := query.Get("kind"); kind != "" {
		filter.Kind = ptr.Ptr(kind)
	}

	result, err := h.admin.AllReservations(r.Context(), sess.AccessToken, filter)
	if err != nil {
		switch {
		case errors.Is(err, adminService.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, adminService.ErrSessionExpired):
			handlers.RespondUnauthorized(w, msgSessionExpired)
		default:
			h.logger.Error("GET /admin/reservations - failed for user=%d: %v", sess.UserID, err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
