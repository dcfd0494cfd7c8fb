package list_trainers

import (
	"net/http"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
)

const msgCoreUnavailable = "сервіс тимчасово недоступний"

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

// Handle GET /api/v1/trainers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.ListTrainers(r.Context())
	if err != nil {
		h.logger.Error("GET /trainers - failed: %v", err)
		handlers.RespondBadGateway(w, msgCoreUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
