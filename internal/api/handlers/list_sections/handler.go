package list_sections

import (
	"net/http"
	"strconv"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/domain"
	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/ptr"
)

const (
	msgInvalidHallID   = "некоректне значення hallId"
	msgCoreUnavailable = "сервіс тимчасово недоступний"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

// Handle GET /api/v1/sections?sportType=...&preparationLevel=...&ageCategory=...&hallId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var filter domain.SectionFilter

	query := r.URL.Query()
	if sportType := query.Get("sportType"); sportType != "" {
		filter.SportType = ptr.Ptr(sportType)
	}
	if level := query.Get("preparationLevel"); level != "" {
		filter.PreparationLevel = ptr.Ptr(level)
	}
	if age := query.Get("ageCategory"); age != "" {
		filter.AgeCategory = ptr.Ptr(age)
	}
	if hallID := query.Get("hallId"); hallID != "" {
		value, err := strconv.ParseInt(hallID, 10, 64)
		if err != nil || value <= 0 {
			handlers.RespondBadRequest(w, msgInvalidHallID)
			return
		}
		filter.HallID = ptr.Ptr(value)
	}

	result, err := h.catalog.ListSections(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /sections - failed: %v", err)
		handlers.RespondBadGateway(w, msgCoreUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
