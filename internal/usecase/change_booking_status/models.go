package change_booking_status

import (
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
)

// Request модель запроса на смену статуса брони
type Request struct {
	BookingID    int64
	TargetStatus string  // pending | confirmed | cancelled
	Note         *string // заметка, сохраняется вместе со статусом (опционально)
}

// Response модель ответа с обновлённой бронью
type Response struct {
	ID          int64
	TourID      int64
	ScheduleID  int64
	UserID      int64
	Travelers   int
	Status      string
	StartDate   time.Time
	TotalAmount float64
	Note        string
	Contact     domain.Contact
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:          b.ID,
		TourID:      b.TourID,
		ScheduleID:  b.ScheduleID,
		UserID:      b.UserID,
		Travelers:   b.Travelers,
		Status:      string(b.Status),
		StartDate:   b.StartDate,
		TotalAmount: b.TotalAmount,
		Note:        b.Note,
		Contact:     b.Contact,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
