package change_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/schedule"
)

// UseCase use case смены статуса брони.
// Единственная точка, где меняется поле status: и админское
// подтверждение/отклонение, и отмена клиентом проходят через него.
// Допустимость перехода определяет таблица domain.CanTransition.
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет переход статуса брони.
// Переход pending -> confirmed повторно проверяет вместимость по состоянию
// на момент перехода (не создания: места могли разобрать другие брони,
// подтверждённые в промежутке). Проверка и запись идут в сериализуемой
// транзакции с блокировкой строки выезда. Отмена мест не трогает:
// остаток всегда выводится из подтверждённых броней.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ChangeBookingStatus: booking=%d, target=%s", req.BookingID, req.TargetStatus)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	target, err := domain.ParseBookingStatus(req.TargetStatus)
	if err != nil {
		uc.logger.Warn("ChangeBookingStatus: unknown status %q for booking=%d", req.TargetStatus, req.BookingID)
		return nil, fmt.Errorf("%w: %v", ErrUnknownStatus, err)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return nil, fmt.Errorf("%w: note is too long", ErrInvalidInput)
	}

	var result *domain.Booking

	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ChangeBookingStatus: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ChangeBookingStatus: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		transition, allowed := domain.CanTransition(booking.Status, target)
		if !allowed {
			uc.logger.Warn("ChangeBookingStatus: illegal transition %s -> %s for booking id=%d",
				booking.Status, target, req.BookingID)
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, booking.Status, target)
		}

		if transition.NeedsCapacityCheck {
			// Строка выезда блокируется FOR UPDATE на время проверки
			schedule, err := uc.scheduleRepo.GetByID(txCtx, booking.ScheduleID)
			if err != nil {
				if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
					uc.logger.Warn("ChangeBookingStatus: schedule id=%d not found for booking id=%d",
						booking.ScheduleID, booking.ID)
					return ErrScheduleNotFound
				}
				uc.logger.Error("ChangeBookingStatus: failed to get schedule id=%d: %v", booking.ScheduleID, err)
				return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
			}

			confirmed, err := uc.bookingRepo.SumConfirmedTravelers(txCtx, schedule.ID)
			if err != nil {
				uc.logger.Error("ChangeBookingStatus: failed to sum confirmed travelers: %v", err)
				return fmt.Errorf("%w: failed to sum confirmed travelers: %v", ErrInternal, err)
			}

			available := schedule.AvailableSeats(confirmed)
			if available < booking.Travelers {
				uc.logger.Warn("ChangeBookingStatus: not enough seats to confirm booking id=%d: available=%d, travelers=%d",
					booking.ID, available, booking.Travelers)
				return ErrNotEnoughSeats
			}
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, target, req.Note); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("ChangeBookingStatus: failed to update status for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		booking.Status = target
		if req.Note != nil {
			booking.Note = *req.Note
		}
		result = booking
		return nil
	})

	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Info("ChangeBookingStatus: booking id=%d moved to %s", result.ID, result.Status)

	return toResponse(result), nil
}
