package list_schedules

import (
	"context"

	"github.com/m04kA/TMS-BookingService/internal/service/schedules/models"
)

type ScheduleService interface {
	List(ctx context.Context, tourID *int64) (*models.ScheduleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
