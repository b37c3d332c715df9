package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Пропущенное обязательное поле даёт общую ошибку ErrInvalidInput,
// а не пополевой разбор.
func validateRequest(req *Request) error {
	if req.TourID <= 0 {
		return fmt.Errorf("%w: tourID is required", ErrInvalidInput)
	}

	if req.ScheduleID <= 0 {
		return fmt.Errorf("%w: scheduleID is required", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.Travelers < domain.MinTravelers {
		return fmt.Errorf("%w: travelers must be positive", ErrInvalidInput)
	}

	if !req.Contact.IsComplete() {
		return fmt.Errorf("%w: contact fullName, email and phone are required", ErrInvalidInput)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note is too long", ErrInvalidInput)
	}

	return nil
}

// validateSchedule проверяет линковку и календарь выезда.
// Порядок проверок фиксирован: принадлежность туру, затем дата.
// Проверка вместимости выполняется отдельно, под блокировкой строки выезда.
func validateSchedule(schedule *domain.Schedule, tourID int64, now time.Time) error {
	if schedule.TourID != tourID {
		return ErrScheduleTourMismatch
	}

	if schedule.IsPast(now) {
		return ErrDeparturePassed
	}

	return nil
}
