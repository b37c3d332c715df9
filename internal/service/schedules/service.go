package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/schedule"
	tourRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/tour"
	"github.com/m04kA/TMS-BookingService/internal/service/schedules/models"
)

// Service сервис управления выездами туров.
// Свободные места каждого выезда выводятся из суммы туристов
// подтверждённых броней на каждый запрос, вторых источников правды нет.
type Service struct {
	scheduleRepo ScheduleRepository
	tourRepo     TourRepository
	bookingRepo  BookingRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса выездов
func NewService(
	scheduleRepo ScheduleRepository,
	tourRepo TourRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		tourRepo:     tourRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// List получает выезды с производным числом свободных мест,
// опционально фильтруя по туру
func (s *Service) List(ctx context.Context, tourID *int64) (*models.ScheduleListResponse, error) {
	s.logger.Info("List: fetching schedules, tour=%v", tourID)

	schedules, err := s.scheduleRepo.List(ctx, tourID)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		confirmed, err := s.bookingRepo.SumConfirmedTravelers(ctx, schedule.ID)
		if err != nil {
			s.logger.Error("List: failed to sum confirmed travelers for schedule id=%d: %v", schedule.ID, err)
			return nil, fmt.Errorf("%w: List - failed to derive seats: %v", ErrInternal, err)
		}
		result = append(result, models.FromDomainSchedule(schedule, confirmed))
	}

	return &models.ScheduleListResponse{Schedules: result}, nil
}

// GetByID получает выезд по ID с производным числом свободных мест
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ScheduleResponse, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByID: schedule id=%d not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByID: repository error for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	confirmed, err := s.bookingRepo.SumConfirmedTravelers(ctx, schedule.ID)
	if err != nil {
		s.logger.Error("GetByID: failed to sum confirmed travelers for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to derive seats: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule, confirmed), nil
}

// Create создает новый выезд. Тур должен существовать,
// вместимость не меньше одного места.
func (s *Service) Create(ctx context.Context, req *models.CreateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Create: creating schedule for tour=%d, date=%s, seats=%d",
		req.TourID, req.Date.Format(domain.DateFormat), req.SeatsTotal)

	if req.TourID <= 0 {
		return nil, fmt.Errorf("%w: tourID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.SeatsTotal < domain.MinSeatsTotal {
		return nil, fmt.Errorf("%w: seatsTotal must be at least %d", ErrInvalidInput, domain.MinSeatsTotal)
	}

	if _, err := s.tourRepo.GetByID(ctx, req.TourID); err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			s.logger.Warn("Create: tour id=%d not found", req.TourID)
			return nil, ErrTourNotFound
		}
		s.logger.Error("Create: failed to get tour id=%d: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: Create - failed to get tour: %v", ErrInternal, err)
	}

	schedule := &domain.Schedule{
		TourID:     req.TourID,
		Date:       req.Date,
		SeatsTotal: req.SeatsTotal,
	}

	created, err := s.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created schedule id=%d", created.ID)

	// У нового выезда подтверждённых броней быть не может
	return models.FromDomainSchedule(created, 0), nil
}

// Update обновляет дату и/или вместимость выезда.
// Вместимость при обновлении не проверяется против существующих броней:
// снижение seats_total ниже проданного допускается и проявится как
// отрицательный остаток (трактуется вызывающими как "мест нет").
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule id=%d", id)

	if req.Date == nil && req.SeatsTotal == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	updated, err := s.scheduleRepo.Update(ctx, id, req.Date, req.SeatsTotal)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Update: schedule id=%d not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("Update: repository error for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	confirmed, err := s.bookingRepo.SumConfirmedTravelers(ctx, updated.ID)
	if err != nil {
		s.logger.Error("Update: failed to sum confirmed travelers for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to derive seats: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(updated, confirmed), nil
}

// Delete удаляет выезд. Удаление безусловное: брони выезда остаются в базе
// без валидной ссылки. Восстановительной семантики для осиротевших броней
// не определено, поэтому факт лишь логируется.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting schedule id=%d", id)

	orphaned, err := s.bookingRepo.CountBySchedule(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count bookings for schedule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to count bookings: %v", ErrInternal, err)
	}

	if orphaned > 0 {
		s.logger.Warn("Delete: schedule id=%d still has %d bookings, they will be orphaned", id, orphaned)
	}

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: schedule id=%d not found", id)
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for schedule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted schedule id=%d", id)
	return nil
}
