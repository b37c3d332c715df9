package update_schedule

import (
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	"github.com/m04kA/TMS-BookingService/internal/service/schedules/models"
)

// UpdateScheduleRequest HTTP request model; nil-поля не изменяются
type UpdateScheduleRequest struct {
	Date       *string `json:"date,omitempty"` // "2026-07-10"
	SeatsTotal *int    `json:"seatsTotal,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом даты)
func (r *UpdateScheduleRequest) ToServiceRequest() (*models.UpdateScheduleRequest, error) {
	req := &models.UpdateScheduleRequest{
		SeatsTotal: r.SeatsTotal,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}
