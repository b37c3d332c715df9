package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name               string
		from               BookingStatus
		to                 BookingStatus
		allowed            bool
		needsCapacityCheck bool
	}{
		{"pending -> confirmed", StatusPending, StatusConfirmed, true, true},
		{"pending -> cancelled", StatusPending, StatusCancelled, true, false},
		{"confirmed -> cancelled", StatusConfirmed, StatusCancelled, true, false},

		// Переход в тот же статус запрещён, в том числе повторная отмена
		{"pending -> pending", StatusPending, StatusPending, false, false},
		{"confirmed -> confirmed", StatusConfirmed, StatusConfirmed, false, false},
		{"cancelled -> cancelled", StatusCancelled, StatusCancelled, false, false},

		// Отменённая бронь — терминальное состояние
		{"cancelled -> pending", StatusCancelled, StatusPending, false, false},
		{"cancelled -> confirmed", StatusCancelled, StatusConfirmed, false, false},

		// Понижение подтверждённой брони запрещено
		{"confirmed -> pending", StatusConfirmed, StatusPending, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transition, ok := CanTransition(tt.from, tt.to)
			assert.Equal(t, tt.allowed, ok)
			if tt.allowed {
				assert.Equal(t, tt.needsCapacityCheck, transition.NeedsCapacityCheck)
			}
		})
	}
}

func TestParseBookingStatus(t *testing.T) {
	for _, status := range AllStatuses {
		parsed, err := ParseBookingStatus(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := ParseBookingStatus("completed")
	assert.Error(t, err)

	_, err = ParseBookingStatus("")
	assert.Error(t, err)

	// Регистр не нормализуется: статус хранится строго в нижнем регистре
	_, err = ParseBookingStatus("Confirmed")
	assert.Error(t, err)
}
