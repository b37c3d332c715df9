package domain

import "fmt"

// Transition описывает разрешённый переход статуса брони
type Transition struct {
	// NeedsCapacityCheck переход допускается только если на выезде
	// хватает мест для туристов этой брони на момент перехода
	NeedsCapacityCheck bool
}

// transitions единая таблица переходов статусов: (текущий, целевой) -> правило.
// Отсутствие записи означает запрещённый переход. В частности, нет переходов
// в тот же статус, из cancelled куда-либо (терминальный статус) и
// confirmed -> pending (понижение не определено).
var transitions = map[BookingStatus]map[BookingStatus]Transition{
	StatusPending: {
		StatusConfirmed: {NeedsCapacityCheck: true},
		StatusCancelled: {},
	},
	StatusConfirmed: {
		StatusCancelled: {},
	},
}

// CanTransition проверяет допустимость перехода из from в to.
// Второе значение false означает запрещённый переход.
func CanTransition(from, to BookingStatus) (Transition, bool) {
	t, ok := transitions[from][to]
	return t, ok
}

// ParseBookingStatus валидирует строковый статус из внешнего запроса
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}
