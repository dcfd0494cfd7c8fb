package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers"
	getAvailability "github.com/SolomiaSydoryk/sportcenter-gateway/internal/usecase/get_availability"
	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/ptr"
)

const (
	msgInvalidQuery    = "некоректні параметри запиту"
	msgNoTarget        = "вкажіть hallId або sectionId"
	msgAmbiguousTarget = "hallId і sectionId взаємовиключні"
	msgTargetNotFound  = "зал або секцію не знайдено"
	msgCoreUnavailable = "сервіс тимчасово недоступний"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle GET /api/v1/available-timeslots?hallId=...&sectionId=...&selectedSlotId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getAvailability.Request{}
	query := r.URL.Query()

	if hallID := query.Get("hallId"); hallID != "" {
		value, err := strconv.ParseInt(hallID, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.HallID = ptr.Ptr(value)
	}
	if sectionID := query.Get("sectionId"); sectionID != "" {
		value, err := strconv.ParseInt(sectionID, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.SectionID = ptr.Ptr(value)
	}
	if selected := query.Get("selectedSlotId"); selected != "" {
		value, err := strconv.ParseInt(selected, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.SelectedSlotID = ptr.Ptr(value)
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrNoTarget):
			handlers.RespondBadRequest(w, msgNoTarget)
		case errors.Is(err, getAvailability.ErrAmbiguousTarget):
			handlers.RespondBadRequest(w, msgAmbiguousTarget)
		case errors.Is(err, getAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidQuery)
		case errors.Is(err, getAvailability.ErrTargetNotFound):
			handlers.RespondNotFound(w, msgTargetNotFound)
		default:
			h.logger.Error("GET /available-timeslots - failed: %v", err)
			handlers.RespondBadGateway(w, msgCoreUnavailable)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
