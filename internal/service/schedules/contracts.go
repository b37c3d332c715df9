package schedules

import (
	"context"
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория выездов
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	List(ctx context.Context, tourID *int64) ([]*domain.Schedule, error)
	Update(ctx context.Context, id int64, date *time.Time, seatsTotal *int) (*domain.Schedule, error)
	Delete(ctx context.Context, id int64) error
}

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
}

// BookingRepository интерфейс репозитория броней
type BookingRepository interface {
	SumConfirmedTravelers(ctx context.Context, scheduleID int64) (int, error)
	CountBySchedule(ctx context.Context, scheduleID int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
