package list_tours

import (
	"net/http"

	"github.com/m04kA/TMS-BookingService/internal/api/handlers"
)

const (
	msgInvalidFilter = "некорректные параметры фильтрации"
)

type Handler struct {
	service TourService
	logger  Logger
}

func NewHandler(service TourService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours?destination=&minPrice=&maxPrice=&minDuration=&maxDuration=&search=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req, err := ToServiceRequest(
		query.Get("destination"),
		query.Get("minPrice"),
		query.Get("maxPrice"),
		query.Get("minDuration"),
		query.Get("maxDuration"),
		query.Get("search"),
	)
	if err != nil {
		h.logger.Warn("GET /tours - Invalid filter params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /tours - Failed to list tours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tours - Tours retrieved successfully: count=%d", len(result.Tours))
	handlers.RespondJSON(w, http.StatusOK, result.Tours)
}
