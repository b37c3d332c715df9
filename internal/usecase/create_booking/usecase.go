package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/schedule"
	tourRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/tour"
	userClient "github.com/m04kA/TMS-BookingService/internal/integrations/userservice"
)

// UseCase use case для создания брони
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	tourRepo     TourRepository
	userClient   UserServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	tourRepo TourRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		tourRepo:     tourRepo,
		userClient:   userClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания брони.
// Проверка вместимости и запись брони идут в сериализуемой транзакции
// с блокировкой строки выезда, чтобы два конкурентных запроса не продали
// вместе больше мест, чем есть.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, tour=%d, schedule=%d, travelers=%d",
		req.UserID, req.TourID, req.ScheduleID, req.Travelers)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование клиента во внешнем хранилище пользователей
	if _, err := uc.userClient.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем выезд (внутри транзакции строка блокируется FOR UPDATE)
		schedule, err := uc.scheduleRepo.GetByID(txCtx, req.ScheduleID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("CreateBooking: schedule id=%d not found", req.ScheduleID)
				return ErrScheduleNotFound
			}
			uc.logger.Error("CreateBooking: failed to get schedule id=%d: %v", req.ScheduleID, err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		// 4.2. Проверяем принадлежность выезда туру и дату выезда
		if err := validateSchedule(schedule, req.TourID, now); err != nil {
			uc.logger.Warn("CreateBooking: schedule validation failed: %v", err)
			return err
		}

		// 4.3. Проверяем вместимость: свободные места выводятся из суммы
		// туристов подтверждённых броней, нигде не хранятся
		confirmed, err := uc.bookingRepo.SumConfirmedTravelers(txCtx, schedule.ID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to sum confirmed travelers: %v", err)
			return fmt.Errorf("%w: failed to sum confirmed travelers: %v", ErrInternal, err)
		}

		available := schedule.AvailableSeats(confirmed)
		if available < req.Travelers {
			uc.logger.Warn("CreateBooking: not enough seats on schedule id=%d: available=%d, requested=%d",
				schedule.ID, available, req.Travelers)
			return ErrNotEnoughSeats
		}

		// 4.4. Считаем полную стоимость: цена со скидкой, если задана,
		// иначе базовая, умноженная на число туристов
		tour, err := uc.tourRepo.GetByID(txCtx, req.TourID)
		if err != nil {
			if errors.Is(err, tourRepo.ErrTourNotFound) {
				uc.logger.Warn("CreateBooking: tour id=%d not found", req.TourID)
				return ErrTourNotFound
			}
			uc.logger.Error("CreateBooking: failed to get tour id=%d: %v", req.TourID, err)
			return fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
		}

		note := ""
		if req.Note != nil {
			note = *req.Note
		}

		// 4.5. Создаем бронь в статусе pending.
		// Дата выезда и сумма фиксируются на момент создания и дальше
		// не пересчитываются, даже если тур или выезд меняются.
		booking := &domain.Booking{
			TourID:      req.TourID,
			ScheduleID:  req.ScheduleID,
			UserID:      req.UserID,
			Travelers:   req.Travelers,
			Status:      domain.StatusPending,
			StartDate:   schedule.Date,
			TotalAmount: tour.TotalAmount(req.Travelers),
			Note:        note,
			Contact:     req.Contact,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.0f",
		result.ID, result.TotalAmount)

	return toResponse(result), nil
}
