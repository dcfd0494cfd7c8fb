package get_section

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	catalogService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/catalog"
)

const (
	msgInvalidID       = "некоректний ідентифікатор секції"
	msgSectionNotFound = "секцію не знайдено"
	msgCoreUnavailable = "сервіс тимчасово недоступний"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

// Handle GET /api/v1/sections/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.catalog.GetSection(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrSectionNotFound):
			handlers.RespondNotFound(w, msgSectionNotFound)
		default:
			h.logger.Error("GET /sections/{id} - failed for id=%d: %v", id, err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
