package list_tours

import (
	"strconv"

	"github.com/m04kA/TMS-BookingService/internal/service/tours/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	destination string,
	minPriceStr string,
	maxPriceStr string,
	minDurationStr string,
	maxDurationStr string,
	search string,
) (*models.ListToursRequest, error) {
	req := &models.ListToursRequest{}

	if destination != "" {
		req.Destination = &destination
	}

	if minPriceStr != "" {
		minPrice, err := strconv.ParseFloat(minPriceStr, 64)
		if err != nil {
			return nil, err
		}
		req.MinPrice = &minPrice
	}

	if maxPriceStr != "" {
		maxPrice, err := strconv.ParseFloat(maxPriceStr, 64)
		if err != nil {
			return nil, err
		}
		req.MaxPrice = &maxPrice
	}

	if minDurationStr != "" {
		minDuration, err := strconv.Atoi(minDurationStr)
		if err != nil {
			return nil, err
		}
		req.MinDuration = &minDuration
	}

	if maxDurationStr != "" {
		maxDuration, err := strconv.Atoi(maxDurationStr)
		if err != nil {
			return nil, err
		}
		req.MaxDuration = &maxDuration
	}

	if search != "" {
		req.Search = &search
	}

	return req, nil
}
