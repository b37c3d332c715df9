package tours

import (
	"context"
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	tourRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/tour"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	Create(ctx context.Context, tour *domain.Tour) (*domain.Tour, error)
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
	List(ctx context.Context, filter domain.ToursFilter) ([]*domain.Tour, error)
	Update(ctx context.Context, id int64, params tourRepo.UpdateParams) (*domain.Tour, error)
	Delete(ctx context.Context, id int64) error
}

// ScheduleRepository интерфейс репозитория выездов
type ScheduleRepository interface {
	List(ctx context.Context, tourID *int64) ([]*domain.Schedule, error)
}

// BookingRepository интерфейс репозитория броней
type BookingRepository interface {
	SumConfirmedTravelers(ctx context.Context, scheduleID int64) (int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
