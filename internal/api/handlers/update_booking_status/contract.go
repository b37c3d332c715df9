package update_booking_status

import (
	"context"

	changeStatus "github.com/m04kA/TMS-BookingService/internal/usecase/change_booking_status"
)

type ChangeBookingStatusUseCase interface {
	Execute(ctx context.Context, req *changeStatus.Request) (*changeStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
