package models

import (
	"errors"
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// ListBookingsRequest запрос на получение списка броней
type ListBookingsRequest struct {
	UserID *int64  // брони конкретного пользователя (опционально)
	TourID *int64  // брони конкретного тура (опционально)
	Status *string // фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует запрос в domain-фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		UserID: r.UserID,
		TourID: r.TourID,
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return domain.BookingsFilter{}, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// BookingResponse модель брони для внешних слоёв
type BookingResponse struct {
	ID          int64          `json:"id"`
	TourID      int64          `json:"tourId"`
	ScheduleID  int64          `json:"scheduleId"`
	UserID      int64          `json:"userId"`
	Travelers   int            `json:"travelers"`
	Status      string         `json:"status"`
	StartDate   time.Time      `json:"startDate"`
	TotalAmount float64        `json:"totalAmount"`
	Note        string         `json:"note,omitempty"`
	Contact     domain.Contact `json:"contact"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// FromDomainBooking конвертирует domain-бронь в response-модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
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

// BookingListResponse список броней
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// FromDomainBookingList конвертирует список domain-броней
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}
