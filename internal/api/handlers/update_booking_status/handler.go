package update_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TMS-BookingService/internal/api/handlers"
	changeStatus "github.com/m04kA/TMS-BookingService/internal/usecase/change_booking_status"
)

const (
	msgInvalidBookingID   = "некорректный ID брони"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронь не найдена"
	msgScheduleNotFound   = "выезд брони не найден"
	msgUnknownStatus      = "неизвестный статус брони"
	msgIllegalTransition  = "недопустимый переход статуса"
	msgNotEnoughSeats     = "недостаточно свободных мест для подтверждения"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase ChangeBookingStatusUseCase
	logger  Logger
}

func NewHandler(useCase ChangeBookingStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &changeStatus.Request{
		BookingID:    bookingID,
		TargetStatus: req.Status,
		Note:         req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, changeStatus.ErrNotEnoughSeats):
			h.logger.Warn("PATCH /bookings/{id}/status - Not enough seats: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotEnoughSeats)

		case errors.Is(err, changeStatus.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, changeStatus.ErrScheduleNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Schedule not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, changeStatus.ErrUnknownStatus):
			h.logger.Warn("PATCH /bookings/{id}/status - Unknown status: booking_id=%d, status=%s",
				bookingID, req.Status)
			handlers.RespondBadRequest(w, msgUnknownStatus)

		case errors.Is(err, changeStatus.ErrIllegalTransition):
			h.logger.Warn("PATCH /bookings/{id}/status - Illegal transition: booking_id=%d, target=%s",
				bookingID, req.Status)
			handlers.RespondBadRequest(w, msgIllegalTransition)

		case errors.Is(err, changeStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to update status: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Status updated successfully: booking_id=%d, status=%s",
		bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
