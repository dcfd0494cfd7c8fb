package get_dashboard

import (
	"net/http"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
)

const msgCoreUnavailable = "сервіс тимчасово недоступний"

type Handler struct {
	admin  AdminService
	logger Logger
}

func NewHandler(admin AdminService, logger Logger) *Handler {
	return &Handler{admin: admin, logger: logger}
}

// Handle GET /api/v1/admin/dashboard
//
// Помилки окремих панелей не валять відповідь: кожна панель
// повертає власний стан, тому єдина відмова тут - збій шлюзу.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.admin.Dashboard(r.Context(), sess.AccessToken)
	if err != nil {
		h.logger.Error("GET /admin/dashboard - failed for user=%d: %v", sess.UserID, err)
		handlers.RespondBadGateway(w, msgCoreUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
