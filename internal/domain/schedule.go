package domain

import "time"

// Schedule конкретная дата выезда тура со своей вместимостью.
// Количество оставшихся мест никогда не хранится: оно всегда выводится
// из суммы туристов подтверждённых броней (см. AvailableSeats).
type Schedule struct {
	ID         int64
	TourID     int64 // неизменяем после создания
	Date       time.Time
	SeatsTotal int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPast проверяет, что дата выезда уже прошла относительно now.
// Сравнение идёт по календарному дню: выезд сегодня ещё бронируем.
func (s *Schedule) IsPast(now time.Time) bool {
	return truncateToDay(s.Date).Before(truncateToDay(now))
}

// AvailableSeats выводит число свободных мест из суммы туристов
// подтверждённых броней. Результат может быть отрицательным только если
// инвариант вместимости уже нарушен; вызывающие обязаны трактовать такое
// значение как "мест нет", а не как валидный остаток.
func (s *Schedule) AvailableSeats(confirmedTravelers int) int {
	return s.SeatsTotal - confirmedTravelers
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
