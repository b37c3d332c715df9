package change_booking_status

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронь не найдена
	ErrBookingNotFound = errors.New("change_booking_status: booking not found")

	// ErrScheduleNotFound возвращается, когда выезд брони не найден
	// (бронь осиротела после удаления выезда)
	ErrScheduleNotFound = errors.New("change_booking_status: schedule not found")

	// ErrUnknownStatus возвращается, когда целевой статус не входит в
	// множество {pending, confirmed, cancelled}
	ErrUnknownStatus = errors.New("change_booking_status: unknown target status")

	// ErrIllegalTransition возвращается при запрещённом переходе статуса:
	// переход в тот же статус, любой переход из cancelled,
	// понижение confirmed -> pending
	ErrIllegalTransition = errors.New("change_booking_status: illegal status transition")

	// ErrNotEnoughSeats возвращается, когда на момент подтверждения
	// свободных мест меньше, чем туристов в брони
	ErrNotEnoughSeats = errors.New("change_booking_status: not enough available seats")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("change_booking_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("change_booking_status: internal error")
)
