package domain

// Business validation constants
const (
	MinTravelers  = 1
	MinSeatsTotal = 1
	MinDuration   = 1 // дней
	MaxNoteLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllStatuses список всех статусов брони
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}
