package create_schedule

import (
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	"github.com/m04kA/TMS-BookingService/internal/service/schedules/models"
)

// CreateScheduleRequest HTTP request model
type CreateScheduleRequest struct {
	TourID     int64  `json:"tourId"`
	Date       string `json:"date"` // "2026-07-10"
	SeatsTotal int    `json:"seatsTotal"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом даты)
func (r *CreateScheduleRequest) ToServiceRequest() (*models.CreateScheduleRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.CreateScheduleRequest{
		TourID:     r.TourID,
		Date:       date,
		SeatsTotal: r.SeatsTotal,
	}, nil
}
