package create_booking

import (
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	createBooking "github.com/m04kA/TMS-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TourID     int64          `json:"tourId"`
	ScheduleID int64          `json:"scheduleId"`
	Travelers  int            `json:"travelers"`
	Contact    ContactRequest `json:"contact"`
	Note       *string        `json:"note,omitempty"`
}

// ContactRequest контактный блок заявки
type ContactRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
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
	Contact     ContactRequest `json:"contact"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		TourID:     r.TourID,
		ScheduleID: r.ScheduleID,
		UserID:     userID,
		Travelers:  r.Travelers,
		Contact: domain.Contact{
			FullName: r.Contact.FullName,
			Email:    r.Contact.Email,
			Phone:    r.Contact.Phone,
		},
		Note: r.Note,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
		Contact: ContactRequest{
			FullName: resp.Contact.FullName,
			Email:    resp.Contact.Email,
			Phone:    resp.Contact.Phone,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
