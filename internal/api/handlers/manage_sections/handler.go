package manage_sections

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
	msgInvalidID       = "некоректний ідентифікатор секції"
	msgInvalidSlotID   = "некоректний ідентифікатор слота розкладу"
	msgInvalidBody     = "некоректне тіло запиту"
	msgRejected        = "основний сервіс відхилив дані секції"
	msgSectionNotFound = "секцію не знайдено"
	msgAccessDenied    = "недостатньо прав для керування секціями"
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

// HandleCreate POST /api/v1/admin/sections
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req models.SectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/sections - invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.admin.CreateSection(r.Context(), sess.AccessToken, &req)
	if err != nil {
		h.respondError(w, "POST /admin/sections", sess.UserID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/admin/sections/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	var req models.SectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/sections/{id} - invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.admin.UpdateSection(r.Context(), sess.AccessToken, id, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/sections/{id}", sess.UserID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/sections/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.admin.DeleteSection(r.Context(), sess.AccessToken, id); err != nil {
		h.respondError(w, "DELETE /admin/sections/{id}", sess.UserID, err)
		return
	}

	handlers.RespondNoContent(w)
}

// HandleAddSlot POST /api/v1/admin/sections/{id}/schedule
func (h *Handler) HandleAddSlot(w http.ResponseWriter, r *http.Request) {
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

	var req models.ScheduleSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/sections/{id}/schedule - invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.SectionID = id

	if err := h.admin.AddScheduleSlot(r.Context(), sess.AccessToken, &req); err != nil {
		h.respondError(w, "POST /admin/sections/{id}/schedule", sess.UserID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

// HandleRemoveSlot DELETE /api/v1/admin/schedule/{id}
func (h *Handler) HandleRemoveSlot(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.admin.RemoveScheduleSlot(r.Context(), sess.AccessToken, id); err != nil {
		h.respondError(w, "DELETE /admin/schedule/{id}", sess.UserID, err)
		return
	}

	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, userID int64, err error) {
	switch {
	case errors.Is(err, adminService.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgRejected)
	case errors.Is(err, adminService.ErrSectionNotFound):
		handlers.RespondNotFound(w, msgSectionNotFound)
	case errors.Is(err, adminService.ErrAccessDenied):
		handlers.RespondForbidden(w, msgAccessDenied)
	case errors.Is(err, adminService.ErrSessionExpired):
		handlers.RespondUnauthorized(w, msgSessionExpired)
	default:
		h.logger.Error("%s - failed for user=%d: %v", op, userID, err)
		handlers.RespondBadGateway(w, msgCoreUnavailable)
	}
}
