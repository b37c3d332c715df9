package domain

import (
	"strings"
	"time"
)

// Tour запись каталога туров
type Tour struct {
	ID           int64
	Name         string
	Slug         string
	Destination  string
	Region       string
	Price        float64
	SalePrice    *float64 // цена со скидкой, если задана
	DurationDays int
	Thumbnail    *string
	Images       []string
	Highlights   []string
	Itinerary    []ItineraryItem
	Policies     Policies

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItineraryItem один день программы тура
type ItineraryItem struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Policies текстовый блок условий тура
type Policies struct {
	Deposit      string `json:"deposit,omitempty"`
	Cancellation string `json:"cancellation,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// EffectivePrice возвращает действующую цену за одного туриста:
// цену со скидкой, если она задана, иначе базовую.
func (t *Tour) EffectivePrice() float64 {
	if t.SalePrice != nil {
		return *t.SalePrice
	}
	return t.Price
}

// TotalAmount считает полную стоимость брони для указанного числа туристов.
// Сумма фиксируется в брони при создании и дальше не пересчитывается.
func (t *Tour) TotalAmount(travelers int) float64 {
	return t.EffectivePrice() * float64(travelers)
}

// MatchesKeyword проверяет совпадение тура с поисковым запросом
// по названию, направлению, региону и списку highlights.
func (t *Tour) MatchesKeyword(keyword string) bool {
	search := strings.ToLower(strings.TrimSpace(keyword))
	if search == "" {
		return true
	}

	if strings.Contains(strings.ToLower(t.Name), search) ||
		strings.Contains(strings.ToLower(t.Destination), search) ||
		strings.Contains(strings.ToLower(t.Region), search) {
		return true
	}

	for _, h := range t.Highlights {
		if strings.Contains(strings.ToLower(h), search) {
			return true
		}
	}

	return false
}

// ToursFilter фильтр каталога туров
type ToursFilter struct {
	Destination *string  // подстрока направления (без учета регистра)
	MinPrice    *float64 // нижняя граница базовой цены
	MaxPrice    *float64 // верхняя граница базовой цены
	MinDuration *int     // нижняя граница длительности в днях
	MaxDuration *int     // верхняя граница длительности в днях
	Search      *string  // ключевое слово (name/destination/region/highlights)
}
