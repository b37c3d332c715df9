package tours

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	tourRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/tour"
	"github.com/m04kA/TMS-BookingService/internal/service/tours/models"
	"github.com/m04kA/TMS-BookingService/pkg/ptr"
)

// ---- фейки ----

type fakeTourRepo struct {
	tours map[int64]*domain.Tour
}

func (r *fakeTourRepo) Create(_ context.Context, tour *domain.Tour) (*domain.Tour, error) {
	created := *tour
	created.ID = int64(len(r.tours) + 1)
	r.tours[created.ID] = &created
	result := created
	return &result, nil
}

func (r *fakeTourRepo) GetByID(_ context.Context, id int64) (*domain.Tour, error) {
	t, ok := r.tours[id]
	if !ok {
		return nil, tourRepo.ErrTourNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTourRepo) List(_ context.Context, filter domain.ToursFilter) ([]*domain.Tour, error) {
	// Повторяет контракт хранилища: направление и ценовой диапазон
	// фильтруются здесь, ключевое слово и длительность — в сервисе
	result := make([]*domain.Tour, 0, len(r.tours))
	for _, t := range r.tours {
		if filter.MinPrice != nil && t.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && t.Price > *filter.MaxPrice {
			continue
		}
		copied := *t
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeTourRepo) Update(_ context.Context, id int64, params tourRepo.UpdateParams) (*domain.Tour, error) {
	t, ok := r.tours[id]
	if !ok {
		return nil, tourRepo.ErrTourNotFound
	}
	if params.Price != nil {
		t.Price = *params.Price
	}
	if params.Name != nil {
		t.Name = *params.Name
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTourRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.tours[id]; !ok {
		return tourRepo.ErrTourNotFound
	}
	delete(r.tours, id)
	return nil
}

type fakeScheduleRepo struct {
	schedules []*domain.Schedule
}

func (r *fakeScheduleRepo) List(_ context.Context, tourID *int64) ([]*domain.Schedule, error) {
	result := make([]*domain.Schedule, 0)
	for _, s := range r.schedules {
		if tourID != nil && s.TourID != *tourID {
			continue
		}
		copied := *s
		result = append(result, &copied)
	}
	return result, nil
}

type fakeBookingRepo struct {
	confirmed map[int64]int // scheduleID -> сумма туристов
}

func (r *fakeBookingRepo) SumConfirmedTravelers(_ context.Context, scheduleID int64) (int, error) {
	return r.confirmed[scheduleID], nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type env struct {
	svc       *Service
	tours     *fakeTourRepo
	schedules *fakeScheduleRepo
	bookings  *fakeBookingRepo
	now       time.Time
}

func newEnv() *env {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tours := &fakeTourRepo{tours: map[int64]*domain.Tour{}}
	schedules := &fakeScheduleRepo{}
	bookings := &fakeBookingRepo{confirmed: map[int64]int{}}

	svc := NewService(tours, schedules, bookings, noopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: now}

	return &env{svc: svc, tours: tours, schedules: schedules, bookings: bookings, now: now}
}

// ---- тесты ----

func TestList_SearchAndDurationFilters(t *testing.T) {
	e := newEnv()
	e.tours.tours[1] = &domain.Tour{ID: 1, Name: "Ликийская тропа", Destination: "Турция", Region: "Анталья", Price: 100, DurationDays: 7}
	e.tours.tours[2] = &domain.Tour{ID: 2, Name: "Горный Алтай", Destination: "Россия", Region: "Алтай", Price: 200, DurationDays: 10}
	e.tours.tours[3] = &domain.Tour{ID: 3, Name: "Байкал зимой", Destination: "Россия", Region: "Иркутск", Price: 300, DurationDays: 4}

	result, err := e.svc.List(context.Background(), &models.ListToursRequest{Search: ptr.Ptr("россия")})
	require.NoError(t, err)
	assert.Len(t, result.Tours, 2)

	result, err = e.svc.List(context.Background(), &models.ListToursRequest{
		MinDuration: ptr.Ptr(5),
		MaxDuration: ptr.Ptr(8),
	})
	require.NoError(t, err)
	require.Len(t, result.Tours, 1)
	assert.Equal(t, int64(1), result.Tours[0].ID)
}

func TestGetByID_EnrichmentSkipsPastSchedules(t *testing.T) {
	e := newEnv()
	e.tours.tours[1] = &domain.Tour{ID: 1, Name: "Тур", Destination: "Турция", Region: "Анталья", Price: 100, DurationDays: 7}
	e.schedules.schedules = []*domain.Schedule{
		{ID: 10, TourID: 1, Date: e.now.AddDate(0, 0, -5), SeatsTotal: 10},
		{ID: 11, TourID: 1, Date: e.now.AddDate(0, 0, 5), SeatsTotal: 10},
		{ID: 12, TourID: 1, Date: e.now, SeatsTotal: 10}, // сегодня — ещё показывается
	}

	result, err := e.svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result.Schedules, 2)
	assert.Equal(t, int64(11), result.Schedules[0].ID)
	assert.Equal(t, int64(12), result.Schedules[1].ID)
}

func TestGetByID_DerivesAvailableSeats(t *testing.T) {
	e := newEnv()
	e.tours.tours[1] = &domain.Tour{ID: 1, Name: "Тур", Destination: "Турция", Region: "Анталья", Price: 100, DurationDays: 7}
	e.schedules.schedules = []*domain.Schedule{
		{ID: 10, TourID: 1, Date: e.now.AddDate(0, 0, 5), SeatsTotal: 10},
		{ID: 11, TourID: 1, Date: e.now.AddDate(0, 0, 6), SeatsTotal: 5},
	}
	e.bookings.confirmed[10] = 7
	e.bookings.confirmed[11] = 8 // инвариант нарушен: остаток отрицательный

	result, err := e.svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result.Schedules, 2)
	assert.Equal(t, 3, result.Schedules[0].SeatsAvailable)
	// Отрицательный остаток отдаётся как есть
	assert.Equal(t, -3, result.Schedules[1].SeatsAvailable)
}

func TestGetByID_NotFound(t *testing.T) {
	e := newEnv()

	_, err := e.svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.CreateTourRequest)
	}{
		{"пустое название", func(r *models.CreateTourRequest) { r.Name = "" }},
		{"пустое направление", func(r *models.CreateTourRequest) { r.Destination = "" }},
		{"пустой регион", func(r *models.CreateTourRequest) { r.Region = "" }},
		{"отрицательная цена", func(r *models.CreateTourRequest) { r.Price = -1 }},
		{"отрицательная скидка", func(r *models.CreateTourRequest) { r.SalePrice = ptr.Ptr(-1.0) }},
		{"нулевая длительность", func(r *models.CreateTourRequest) { r.DurationDays = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv()
			req := &models.CreateTourRequest{
				Name:         "Тур",
				Destination:  "Турция",
				Region:       "Анталья",
				Price:        100,
				DurationDays: 7,
			}
			tt.mutate(req)

			_, err := e.svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_PriceChangeDoesNotTouchBookings(t *testing.T) {
	e := newEnv()
	e.tours.tours[1] = &domain.Tour{ID: 1, Name: "Тур", Destination: "Турция", Region: "Анталья", Price: 100, DurationDays: 7}

	result, err := e.svc.Update(context.Background(), 1, &models.UpdateTourRequest{Price: ptr.Ptr(250.0)})
	require.NoError(t, err)
	assert.Equal(t, 250.0, result.Price)
}

func TestDelete_NotFound(t *testing.T) {
	e := newEnv()

	err := e.svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTourNotFound)
}
