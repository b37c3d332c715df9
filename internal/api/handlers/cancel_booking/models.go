package cancel_booking

import (
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	changeStatus "github.com/m04kA/TMS-BookingService/internal/usecase/change_booking_status"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Note *string `json:"note,omitempty"` // причина отмены (опционально)
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64          `json:"id"`
	TourID      int64          `json:"tourId"`
	ScheduleID  int64          `json:"scheduleId"`
	UserID      int64          `json:"userId"`
	Travelers   int            `json:"travelers"`
	Status      string         `json:"status"`
	StartDate   string         `json:"startDate"`
	TotalAmount float64        `json:"totalAmount"`
	Note        string         `json:"note,omitempty"`
	Contact     domain.Contact `json:"contact"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *changeStatus.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		TourID:      resp.TourID,
		ScheduleID:  resp.ScheduleID,
		UserID:      resp.UserID,
		Travelers:   resp.Travelers,
		Status:      resp.Status,
		StartDate:   resp.StartDate.Format(domain.DateFormat),
		TotalAmount: resp.TotalAmount,
		Note:        resp.Note,
		Contact:     resp.Contact,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
