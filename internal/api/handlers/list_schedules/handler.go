package list_schedules

import (
	"net/http"
	"strconv"

	"github.com/m04kA/TMS-BookingService/internal/api/handlers"
)

const (
	msgInvalidTourID = "некорректный ID тура"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules?tourId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var tourID *int64
	if tourIDStr := r.URL.Query().Get("tourId"); tourIDStr != "" {
		id, err := strconv.ParseInt(tourIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /schedules - Invalid tour ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTourID)
			return
		}
		tourID = &id
	}

	result, err := h.service.List(r.Context(), tourID)
	if err != nil {
		h.logger.Error("GET /schedules - Failed to list schedules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedules - Schedules retrieved successfully: count=%d", len(result.Schedules))
	handlers.RespondJSON(w, http.StatusOK, result.Schedules)
}
