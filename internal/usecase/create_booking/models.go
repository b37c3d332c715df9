package create_booking

import (
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
)

// Request модель запроса на создание брони
type Request struct {
	TourID     int64          // ID тура
	ScheduleID int64          // ID выезда (обязан принадлежать туру)
	UserID     int64          // ID клиента
	Travelers  int            // Количество туристов (>= 1)
	Contact    domain.Contact // Контактный блок, все поля обязательны
	Note       *string        // Заметка (опционально)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID         int64
	TourID     int64
	ScheduleID int64
	UserID     int64
	Travelers  int
	Status     string

	// Snapshot-поля, зафиксированные при создании
	StartDate   time.Time
	TotalAmount float64

	Note    string
	Contact domain.Contact

	CreatedAt time.Time
	UpdatedAt time.Time
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
