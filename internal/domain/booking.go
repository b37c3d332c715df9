package domain

import (
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking бронь клиента на конкретный выезд тура
type Booking struct {
	ID         int64
	TourID     int64
	ScheduleID int64 // выезд обязан принадлежать туру TourID
	UserID     int64
	Travelers  int
	Status     BookingStatus

	// Snapshot-поля: фиксируются при создании и не пересчитываются,
	// даже если тур или выезд позже меняются
	StartDate   time.Time
	TotalAmount float64

	Note    string
	Contact Contact

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// ConsumesSeats returns true if the booking counts against schedule capacity.
// Места занимают только подтверждённые брони; pending и cancelled не считаются.
func (b *Booking) ConsumesSeats() bool {
	return b.Status == StatusConfirmed
}

// Contact контактный блок брони; все поля обязательны
type Contact struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// IsComplete проверяет, что все контактные поля заполнены
func (c Contact) IsComplete() bool {
	return strings.TrimSpace(c.FullName) != "" &&
		strings.TrimSpace(c.Email) != "" &&
		strings.TrimSpace(c.Phone) != ""
}

// BookingsFilter фильтр для получения списка броней
type BookingsFilter struct {
	UserID     *int64         // брони конкретного пользователя (опционально)
	ScheduleID *int64         // брони конкретного выезда (опционально)
	TourID     *int64         // брони конкретного тура (опционально)
	Status     *BookingStatus // фильтр по статусу (опционально)
}
