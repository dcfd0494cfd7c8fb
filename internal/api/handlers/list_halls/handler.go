package list_halls

import (
	"net/http"
	"strconv"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/ptr"
)

const (
	msgInvalidCapacity = "некоректне значення capacity"
	msgCoreUnavailable = "сервіс тимчасово недоступний"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

// Handle GET /api/v1/halls?eventType=...&capacity=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var filter domain.HallFilter

	if eventType := r.URL.Query().Get("eventType"); eventType != "" {
		filter.EventType = ptr.Ptr(eventType)
	}
	if capacity := r.URL.Query().Get("capacity"); capacity != "" {
		value, err := strconv.Atoi(capacity)
		if err != nil || value <= 0 {
			handlers.RespondBadRequest(w, msgInvalidCapacity)
			return
		}
		filter.Capacity = ptr.Ptr(value)
	}

	result, err := h.catalog.ListHalls(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /halls - failed: %v", err)
		handlers.RespondBadGateway(w, msgCoreUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
