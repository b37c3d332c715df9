package create_tour

import (
	"github.com/m04kA/TMS-BookingService/internal/domain"
	"github.com/m04kA/TMS-BookingService/internal/service/tours/models"
)

// CreateTourRequest HTTP request model
type CreateTourRequest struct {
	Name         string                 `json:"name"`
	Slug         string                 `json:"slug"`
	Destination  string                 `json:"destination"`
	Region       string                 `json:"region"`
	Price        float64                `json:"price"`
	SalePrice    *float64               `json:"salePrice,omitempty"`
	DurationDays int                    `json:"durationDays"`
	Thumbnail    *string                `json:"thumbnail,omitempty"`
	Images       []string               `json:"images,omitempty"`
	Highlights   []string               `json:"highlights,omitempty"`
	Itinerary    []domain.ItineraryItem `json:"itinerary,omitempty"`
	Policies     domain.Policies        `json:"policies,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateTourRequest) ToServiceRequest() *models.CreateTourRequest {
	return &models.CreateTourRequest{
		Name:         r.Name,
		Slug:         r.Slug,
		Destination:  r.Destination,
		Region:       r.Region,
		Price:        r.Price,
		SalePrice:    r.SalePrice,
		DurationDays: r.DurationDays,
		Thumbnail:    r.Thumbnail,
		Images:       r.Images,
		Highlights:   r.Highlights,
		Itinerary:    r.Itinerary,
		Policies:     r.Policies,
	}
}
