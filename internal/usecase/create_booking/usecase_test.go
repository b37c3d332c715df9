package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/schedule"
	tourRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/tour"
	"github.com/m04kA/TMS-BookingService/internal/integrations/userservice"
	"github.com/m04kA/TMS-BookingService/pkg/ptr"
)

// ---- фейки ----

type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{nextID: 1, bookings: map[int64]*domain.Booking{}}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *b
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.bookings[stored.ID] = &stored
	r.nextID++

	result := stored
	return &result, nil
}

func (r *fakeBookingRepo) SumConfirmedTravelers(_ context.Context, scheduleID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sum := 0
	for _, b := range r.bookings {
		if b.ScheduleID == scheduleID && b.ConsumesSeats() {
			sum += b.Travelers
		}
	}
	return sum, nil
}

type fakeScheduleRepo struct {
	schedules map[int64]*domain.Schedule
}

func (r *fakeScheduleRepo) GetByID(_ context.Context, id int64) (*domain.Schedule, error) {
	s, ok := r.schedules[id]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	copied := *s
	return &copied, nil
}

type fakeTourRepo struct {
	tours map[int64]*domain.Tour
}

func (r *fakeTourRepo) GetByID(_ context.Context, id int64) (*domain.Tour, error) {
	t, ok := r.tours[id]
	if !ok {
		return nil, tourRepo.ErrTourNotFound
	}
	copied := *t
	return &copied, nil
}

type fakeUserClient struct {
	users map[int64]*userservice.User
}

func (c *fakeUserClient) GetUser(_ context.Context, userID int64) (*userservice.User, error) {
	u, ok := c.users[userID]
	if !ok {
		return nil, userservice.ErrUserNotFound
	}
	return u, nil
}

// fakeTxManager сериализует транзакции мьютексом, имитируя
// сериализуемый уровень изоляции с блокировкой строки выезда
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
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

// ---- сборка окружения ----

type env struct {
	uc        *UseCase
	bookings  *fakeBookingRepo
	schedules *fakeScheduleRepo
	tours     *fakeTourRepo
	now       time.Time
}

func newEnv() *env {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	bookings := newFakeBookingRepo()
	schedules := &fakeScheduleRepo{schedules: map[int64]*domain.Schedule{}}
	tours := &fakeTourRepo{tours: map[int64]*domain.Tour{}}
	users := &fakeUserClient{users: map[int64]*userservice.User{
		100: {ID: 100, Name: "Иван Петров", Email: "ivan@example.com"},
	}}

	uc := NewUseCase(bookings, schedules, tours, users, &fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}

	return &env{uc: uc, bookings: bookings, schedules: schedules, tours: tours, now: now}
}

func (e *env) addTour(id int64, price float64, salePrice *float64) {
	e.tours.tours[id] = &domain.Tour{
		ID:           id,
		Name:         "Тестовый тур",
		Destination:  "Турция",
		Region:       "Анталья",
		Price:        price,
		SalePrice:    salePrice,
		DurationDays: 7,
	}
}

func (e *env) addSchedule(id, tourID int64, daysFromNow int, seatsTotal int) {
	e.schedules.schedules[id] = &domain.Schedule{
		ID:         id,
		TourID:     tourID,
		Date:       e.now.AddDate(0, 0, daysFromNow),
		SeatsTotal: seatsTotal,
	}
}

func (e *env) addConfirmedBooking(scheduleID int64, travelers int) {
	b, _ := e.bookings.Create(context.Background(), &domain.Booking{
		TourID:     1,
		ScheduleID: scheduleID,
		UserID:     999,
		Travelers:  travelers,
		Status:     domain.StatusConfirmed,
	})
	e.bookings.bookings[b.ID].Status = domain.StatusConfirmed
}

func validRequest() *Request {
	return &Request{
		TourID:     1,
		ScheduleID: 10,
		UserID:     100,
		Travelers:  2,
		Contact: domain.Contact{
			FullName: "Иван Петров",
			Email:    "ivan@example.com",
			Phone:    "+79990001122",
		},
	}
}

// ---- тесты ----

func TestExecute_CreatesPendingBookingWithSnapshot(t *testing.T) {
	e := newEnv()
	e.addTour(1, 8_200_000, nil)
	e.addSchedule(10, 1, 30, 10)

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(100), resp.UserID)
	assert.Equal(t, 2, resp.Travelers)
	// Дата выезда и сумма зафиксированы на момент создания
	assert.Equal(t, e.now.AddDate(0, 0, 30), resp.StartDate)
	assert.Equal(t, 16_400_000.0, resp.TotalAmount)
}

func TestExecute_TotalAmountUsesSalePrice(t *testing.T) {
	e := newEnv()
	e.addTour(1, 8_200_000, ptr.Ptr(7_590_000.0))
	e.addSchedule(10, 1, 30, 10)

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 15_180_000.0, resp.TotalAmount)
}

func TestExecute_PendingBookingsDoNotConsumeSeats(t *testing.T) {
	e := newEnv()
	e.addTour(1, 1_000_000, nil)
	e.addSchedule(10, 1, 30, 2)

	// Две pending-брони по 2 туриста на выезд с 2 местами:
	// места не расходуются до подтверждения
	_, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_NotEnoughSeats(t *testing.T) {
	e := newEnv()
	e.addTour(1, 1_000_000, nil)
	e.addSchedule(10, 1, 30, 5)
	e.addConfirmedBooking(10, 4)

	req := validRequest()
	req.Travelers = 2

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotEnoughSeats)
}

func TestExecute_ExactlyLastSeats(t *testing.T) {
	e := newEnv()
	e.addTour(1, 1_000_000, nil)
	e.addSchedule(10, 1, 30, 5)
	e.addConfirmedBooking(10, 3)

	// Ровно оставшиеся места — граница проходит
	req := validRequest()
	req.Travelers = 2
	_, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// На одного больше остатка — отказ
	e.addConfirmedBooking(10, 2)
	req = validRequest()
	req.Travelers = 1
	_, err = e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotEnoughSeats)
}

func TestExecute_OversoldScheduleRejectsAnyBooking(t *testing.T) {
	e := newEnv()
	e.addTour(1, 1_000_000, nil)
	e.addSchedule(10, 1, 30, 5)

	// Инвариант уже нарушен: подтверждено больше мест, чем есть.
	// Отрицательный остаток трактуется как "мест нет".
	e.addConfirmedBooking(10, 7)

	req := validRequest()
	req.Travelers = 1
	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotEnoughSeats)
}

func TestExecute_DeparturePassed(t *testing.T) {
	e := newEnv()
	e.addTour(1, 1_000_000, nil)
	e.addSchedule(10, 1, -1, 10)

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDeparturePassed)
}

func TestExecute_DepartureTodayIsBookable(t *testing.T) {
	e := newEnv()
	e.addTour(1, 1_000_000, nil)
	e.addSchedule(10, 1, 0, 10)

	// Выезд сегодня ещё бронируем: сравнение идёт по календарному дню
	_, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_ScheduleTourMismatch(t *testing.T) {
	e := newEnv()
	e.addTour(1, 1_000_000, nil)
	e.addTour(2, 2_000_000, nil)
	e.addSchedule(10, 2, 30, 10)

	// Выезд принадлежит другому туру
	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleTourMismatch)
}

func TestExecute_ScheduleNotFound(t *testing.T) {
	e := newEnv()
	e.addTour(1, 1_000_000, nil)

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestExecute_TourNotFound(t *testing.T) {
	e := newEnv()
	e.addSchedule(10, 1, 30, 10)

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestExecute_UserNotFound(t *testing.T) {
	e := newEnv()
	e.addTour(1, 1_000_000, nil)
	e.addSchedule(10, 1, 30, 10)

	req := validRequest()
	req.UserID = 777

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"нет тура", func(r *Request) { r.TourID = 0 }},
		{"нет выезда", func(r *Request) { r.ScheduleID = 0 }},
		{"нет пользователя", func(r *Request) { r.UserID = 0 }},
		{"ноль туристов", func(r *Request) { r.Travelers = 0 }},
		{"отрицательные туристы", func(r *Request) { r.Travelers = -3 }},
		{"пустое имя", func(r *Request) { r.Contact.FullName = "  " }},
		{"пустой email", func(r *Request) { r.Contact.Email = "" }},
		{"пустой телефон", func(r *Request) { r.Contact.Phone = "" }},
		{"слишком длинная заметка", func(r *Request) {
			note := make([]byte, domain.MaxNoteLength+1)
			for i := range note {
				note[i] = 'x'
			}
			r.Note = ptr.Ptr(string(note))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv()
			e.addTour(1, 1_000_000, nil)
			e.addSchedule(10, 1, 30, 10)

			req := validRequest()
			tt.mutate(req)

			_, err := e.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
