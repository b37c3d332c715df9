package cancel_booking

import (
	"context"

	"github.com/m04kA/TMS-BookingService/internal/service/bookings/models"
	changeStatus "github.com/m04kA/TMS-BookingService/internal/usecase/change_booking_status"
)

type ChangeBookingStatusUseCase interface {
	Execute(ctx context.Context, req *changeStatus.Request) (*changeStatus.Response, error)
}

type BookingService interface {
	GetByID(ctx context.Context, id int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
