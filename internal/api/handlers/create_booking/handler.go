package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TMS-BookingService/internal/api/handlers"
	"github.com/m04kA/TMS-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/TMS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidInput         = "некорректные данные заявки"
	msgTourNotFound         = "тур не найден"
	msgScheduleNotFound     = "выезд не найден"
	msgUserNotFound         = "пользователь не найден"
	msgScheduleTourMismatch = "выезд не принадлежит указанному туру"
	msgDeparturePassed      = "дата выезда уже прошла"
	msgNotEnoughSeats       = "недостаточно свободных мест на выезде"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrNotEnoughSeats):
			h.logger.Warn("POST /bookings - Not enough seats: schedule_id=%d, travelers=%d",
				req.ScheduleID, req.Travelers)
			handlers.RespondConflict(w, msgNotEnoughSeats)

		case errors.Is(err, createBooking.ErrTourNotFound):
			h.logger.Warn("POST /bookings - Tour not found: tour_id=%d", req.TourID)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, createBooking.ErrScheduleNotFound):
			h.logger.Warn("POST /bookings - Schedule not found: schedule_id=%d", req.ScheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrScheduleTourMismatch):
			h.logger.Warn("POST /bookings - Schedule/tour mismatch: tour_id=%d, schedule_id=%d",
				req.TourID, req.ScheduleID)
			handlers.RespondBadRequest(w, msgScheduleTourMismatch)

		case errors.Is(err, createBooking.ErrDeparturePassed):
			h.logger.Warn("POST /bookings - Departure passed: schedule_id=%d", req.ScheduleID)
			handlers.RespondBadRequest(w, msgDeparturePassed)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, tour_id=%d, error=%v",
				userID, req.TourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, schedule_id=%d",
		result.ID, userID, req.ScheduleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
