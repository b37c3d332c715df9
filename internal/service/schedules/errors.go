package schedules

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда выезд не найден
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("tour not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
