package update_tour

import (
	"context"

	"github.com/m04kA/TMS-BookingService/internal/service/tours/models"
)

type TourService interface {
	Update(ctx context.Context, id int64, req *models.UpdateTourRequest) (*models.TourResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
