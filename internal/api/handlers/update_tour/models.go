package update_tour

import (
	"github.com/m04kA/TMS-BookingService/internal/domain"
	"github.com/m04kA/TMS-BookingService/internal/service/tours/models"
)

// UpdateTourRequest HTTP request model; nil-поля не изменяются
type UpdateTourRequest struct {
	Name         *string                 `json:"name,omitempty"`
	Slug         *string                 `json:"slug,omitempty"`
	Destination  *string                 `json:"destination,omitempty"`
	Region       *string                 `json:"region,omitempty"`
	Price        *float64                `json:"price,omitempty"`
	SalePrice    *float64                `json:"salePrice,omitempty"`
	DurationDays *int                    `json:"durationDays,omitempty"`
	Thumbnail    *string                 `json:"thumbnail,omitempty"`
	Images       *[]string               `json:"images,omitempty"`
	Highlights   *[]string               `json:"highlights,omitempty"`
	Itinerary    *[]domain.ItineraryItem `json:"itinerary,omitempty"`
	Policies     *domain.Policies        `json:"policies,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateTourRequest) ToServiceRequest() *models.UpdateTourRequest {
	return &models.UpdateTourRequest{
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
