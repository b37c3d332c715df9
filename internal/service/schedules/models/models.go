package models

import (
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
)

// CreateScheduleRequest запрос на создание выезда
type CreateScheduleRequest struct {
	TourID     int64
	Date       time.Time
	SeatsTotal int
}

// UpdateScheduleRequest запрос на обновление выезда.
// TourID неизменяем и в запросе отсутствует.
type UpdateScheduleRequest struct {
	Date       *time.Time
	SeatsTotal *int
}

// ScheduleResponse выезд с производным числом свободных мест.
// SeatsAvailable вычисляется на каждый запрос и нигде не хранится.
type ScheduleResponse struct {
	ID             int64     `json:"id"`
	TourID         int64     `json:"tourId"`
	Date           time.Time `json:"date"`
	SeatsTotal     int       `json:"seatsTotal"`
	SeatsAvailable int       `json:"seatsAvailable"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FromDomainSchedule конвертирует domain-выезд в response-модель
func FromDomainSchedule(s *domain.Schedule, confirmedTravelers int) *ScheduleResponse {
	return &ScheduleResponse{
		ID:             s.ID,
		TourID:         s.TourID,
		Date:           s.Date,
		SeatsTotal:     s.SeatsTotal,
		SeatsAvailable: s.AvailableSeats(confirmedTravelers),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// ScheduleListResponse список выездов
type ScheduleListResponse struct {
	Schedules []*ScheduleResponse `json:"schedules"`
}
