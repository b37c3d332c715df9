package models

import (
	"time"

	"github.com/m04kA/TMS-BookingService/internal/domain"
)

// ListToursRequest фильтры каталога туров
type ListToursRequest struct {
	Destination *string
	MinPrice    *float64
	MaxPrice    *float64
	MinDuration *int
	MaxDuration *int
	Search      *string
}

// ToDomainFilter конвертирует запрос в domain-фильтр
func (r *ListToursRequest) ToDomainFilter() domain.ToursFilter {
	return domain.ToursFilter{
		Destination: r.Destination,
		MinPrice:    r.MinPrice,
		MaxPrice:    r.MaxPrice,
		MinDuration: r.MinDuration,
		MaxDuration: r.MaxDuration,
		Search:      r.Search,
	}
}

// CreateTourRequest запрос на создание тура
type CreateTourRequest struct {
	Name         string
	Slug         string
	Destination  string
	Region       string
	Price        float64
	SalePrice    *float64
	DurationDays int
	Thumbnail    *string
	Images       []string
	Highlights   []string
	Itinerary    []domain.ItineraryItem
	Policies     domain.Policies
}

// UpdateTourRequest частичное обновление тура; nil-поля не изменяются
type UpdateTourRequest struct {
	Name         *string
	Slug         *string
	Destination  *string
	Region       *string
	Price        *float64
	SalePrice    *float64
	DurationDays *int
	Thumbnail    *string
	Images       *[]string
	Highlights   *[]string
	Itinerary    *[]domain.ItineraryItem
	Policies     *domain.Policies
}

// EnrichedSchedule выезд тура с производным числом свободных мест
type EnrichedSchedule struct {
	ID             int64     `json:"id"`
	TourID         int64     `json:"tourId"`
	Date           time.Time `json:"date"`
	SeatsTotal     int       `json:"seatsTotal"`
	SeatsAvailable int       `json:"seatsAvailable"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TourResponse тур каталога вместе с предстоящими выездами
type TourResponse struct {
	ID           int64                  `json:"id"`
	Name         string                 `json:"name"`
	Slug         string                 `json:"slug"`
	Destination  string                 `json:"destination"`
	Region       string                 `json:"region"`
	Price        float64                `json:"price"`
	SalePrice    *float64               `json:"salePrice,omitempty"`
	DurationDays int                    `json:"durationDays"`
	Thumbnail    *string                `json:"thumbnail,omitempty"`
	Images       []string               `json:"images"`
	Highlights   []string               `json:"highlights"`
	Itinerary    []domain.ItineraryItem `json:"itinerary"`
	Policies     domain.Policies        `json:"policies"`
	Schedules    []*EnrichedSchedule    `json:"schedules"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

// FromDomainTour конвертирует domain-тур в response-модель
func FromDomainTour(t *domain.Tour, schedules []*EnrichedSchedule) *TourResponse {
	if schedules == nil {
		schedules = []*EnrichedSchedule{}
	}
	return &TourResponse{
		ID:           t.ID,
		Name:         t.Name,
		Slug:         t.Slug,
		Destination:  t.Destination,
		Region:       t.Region,
		Price:        t.Price,
		SalePrice:    t.SalePrice,
		DurationDays: t.DurationDays,
		Thumbnail:    t.Thumbnail,
		Images:       t.Images,
		Highlights:   t.Highlights,
		Itinerary:    t.Itinerary,
		Policies:     t.Policies,
		Schedules:    schedules,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// TourListResponse список туров
type TourListResponse struct {
	Tours []*TourResponse `json:"tours"`
}
