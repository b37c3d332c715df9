package create_booking

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("create_booking: tour not found")

	// ErrScheduleNotFound возвращается, когда выезд не найден
	ErrScheduleNotFound = errors.New("create_booking: schedule not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrScheduleTourMismatch возвращается, когда выезд не принадлежит указанному туру
	ErrScheduleTourMismatch = errors.New("create_booking: schedule does not belong to tour")

	// ErrDeparturePassed возвращается, когда дата выезда уже прошла
	ErrDeparturePassed = errors.New("create_booking: departure date has passed")

	// ErrNotEnoughSeats возвращается, когда свободных мест меньше, чем туристов в заявке
	ErrNotEnoughSeats = errors.New("create_booking: not enough available seats")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
