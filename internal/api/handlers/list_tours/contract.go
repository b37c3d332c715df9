package list_tours

import (
	"context"

	"github.com/m04kA/TMS-BookingService/internal/service/tours/models"
)

type TourService interface {
	List(ctx context.Context, req *models.ListToursRequest) (*models.TourListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
