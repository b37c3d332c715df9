package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleIsPast(t *testing.T) {
	now := time.Date(2026, 7, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		past bool
	}{
		{"вчера", time.Date(2026, 7, 9, 10, 0, 0, 0, time.UTC), true},
		{"сегодня раньше текущего времени", time.Date(2026, 7, 10, 8, 0, 0, 0, time.UTC), false},
		{"сегодня позже текущего времени", time.Date(2026, 7, 10, 23, 0, 0, 0, time.UTC), false},
		{"завтра", time.Date(2026, 7, 11, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Schedule{Date: tt.date}
			assert.Equal(t, tt.past, s.IsPast(now))
		})
	}
}

func TestScheduleAvailableSeats(t *testing.T) {
	s := &Schedule{SeatsTotal: 10}

	assert.Equal(t, 10, s.AvailableSeats(0))
	assert.Equal(t, 3, s.AvailableSeats(7))
	assert.Equal(t, 0, s.AvailableSeats(10))

	// Нарушенный инвариант отдаётся как есть, без округления к нулю
	assert.Equal(t, -2, s.AvailableSeats(12))
}
