package change_booking_status

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/schedule"
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

func (r *fakeBookingRepo) add(scheduleID int64, travelers int, status domain.BookingStatus) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.bookings[id] = &domain.Booking{
		ID:         id,
		TourID:     1,
		ScheduleID: scheduleID,
		UserID:     100,
		Travelers:  travelers,
		Status:     status,
	}
	return id
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus, note *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	if note != nil {
		b.Note = *note
	}
	return nil
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

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type env struct {
	uc        *UseCase
	bookings  *fakeBookingRepo
	schedules *fakeScheduleRepo
}

func newEnv(seatsTotal int) *env {
	bookings := newFakeBookingRepo()
	schedules := &fakeScheduleRepo{schedules: map[int64]*domain.Schedule{
		10: {
			ID:         10,
			TourID:     1,
			Date:       time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
			SeatsTotal: seatsTotal,
		},
	}}

	uc := NewUseCase(bookings, schedules, &fakeTxManager{}, noopLogger{})
	return &env{uc: uc, bookings: bookings, schedules: schedules}
}

func confirm(e *env, bookingID int64) (*Response, error) {
	return e.uc.Execute(context.Background(), &Request{
		BookingID:    bookingID,
		TargetStatus: string(domain.StatusConfirmed),
	})
}

func cancel(e *env, bookingID int64) (*Response, error) {
	return e.uc.Execute(context.Background(), &Request{
		BookingID:    bookingID,
		TargetStatus: string(domain.StatusCancelled),
	})
}

// ---- тесты ----

func TestExecute_ConfirmPendingBooking(t *testing.T) {
	e := newEnv(10)
	id := e.bookings.add(10, 4, domain.StatusPending)

	resp, err := confirm(e, id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	confirmed, _ := e.bookings.SumConfirmedTravelers(context.Background(), 10)
	assert.Equal(t, 4, confirmed)
}

func TestExecute_ConfirmRechecksCapacityAtTransitionTime(t *testing.T) {
	e := newEnv(10)

	// Обе брони созданы, когда мест хватало на каждую по отдельности
	first := e.bookings.add(10, 6, domain.StatusPending)
	second := e.bookings.add(10, 6, domain.StatusPending)

	_, err := confirm(e, first)
	require.NoError(t, err)

	// На момент второго подтверждения свободно 4 места из 10
	_, err = confirm(e, second)
	assert.ErrorIs(t, err, ErrNotEnoughSeats)
}

func TestExecute_ConfirmExactlyRemainingSeats(t *testing.T) {
	e := newEnv(10)
	e.bookings.add(10, 7, domain.StatusConfirmed)
	id := e.bookings.add(10, 3, domain.StatusPending)

	_, err := confirm(e, id)
	require.NoError(t, err)
}

func TestExecute_CancelReleasesSeats(t *testing.T) {
	e := newEnv(10)

	first := e.bookings.add(10, 8, domain.StatusConfirmed)
	second := e.bookings.add(10, 5, domain.StatusPending)

	// Мест не хватает, пока первая бронь подтверждена
	_, err := confirm(e, second)
	require.ErrorIs(t, err, ErrNotEnoughSeats)

	// Отмена возвращает места: остаток выводится из подтверждённых броней
	_, err = cancel(e, first)
	require.NoError(t, err)

	_, err = confirm(e, second)
	require.NoError(t, err)
}

func TestExecute_CancelConfirmedBooking(t *testing.T) {
	e := newEnv(10)
	id := e.bookings.add(10, 4, domain.StatusConfirmed)

	resp, err := cancel(e, id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)

	confirmed, _ := e.bookings.SumConfirmedTravelers(context.Background(), 10)
	assert.Equal(t, 0, confirmed)
}

func TestExecute_RepeatedCancelIsRejected(t *testing.T) {
	e := newEnv(10)
	id := e.bookings.add(10, 2, domain.StatusPending)

	_, err := cancel(e, id)
	require.NoError(t, err)

	// Повторная отмена — переход cancelled -> cancelled, запрещён
	_, err = cancel(e, id)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestExecute_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.BookingStatus
		target domain.BookingStatus
	}{
		{"cancelled -> confirmed", domain.StatusCancelled, domain.StatusConfirmed},
		{"cancelled -> pending", domain.StatusCancelled, domain.StatusPending},
		{"confirmed -> pending", domain.StatusConfirmed, domain.StatusPending},
		{"confirmed -> confirmed", domain.StatusConfirmed, domain.StatusConfirmed},
		{"pending -> pending", domain.StatusPending, domain.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(10)
			id := e.bookings.add(10, 2, tt.from)

			_, err := e.uc.Execute(context.Background(), &Request{
				BookingID:    id,
				TargetStatus: string(tt.target),
			})
			assert.ErrorIs(t, err, ErrIllegalTransition)
		})
	}
}

func TestExecute_UnknownStatus(t *testing.T) {
	e := newEnv(10)
	id := e.bookings.add(10, 2, domain.StatusPending)

	_, err := e.uc.Execute(context.Background(), &Request{BookingID: id, TargetStatus: "completed"})
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestExecute_BookingNotFound(t *testing.T) {
	e := newEnv(10)

	_, err := confirm(e, 777)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_OrphanedBookingConfirmFails(t *testing.T) {
	e := newEnv(10)
	id := e.bookings.add(55, 2, domain.StatusPending)

	// Выезд удалён, бронь осиротела: подтвердить нельзя
	_, err := confirm(e, id)
	assert.ErrorIs(t, err, ErrScheduleNotFound)

	// Но отменить осиротевшую бронь можно: отмена вместимость не проверяет
	_, err = cancel(e, id)
	assert.NoError(t, err)
}

func TestExecute_ConcurrentConfirmationsNeverOversell(t *testing.T) {
	e := newEnv(10)

	// 8 pending-броней по 3 туриста на 10 мест: подтвердиться
	// могут максимум 3 из них
	ids := make([]int64, 8)
	for i := range ids {
		ids[i] = e.bookings.add(10, 3, domain.StatusPending)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(bookingID int64) {
			defer wg.Done()
			_, _ = confirm(e, bookingID)
		}(id)
	}
	wg.Wait()

	confirmed, err := e.bookings.SumConfirmedTravelers(context.Background(), 10)
	require.NoError(t, err)
	assert.LessOrEqual(t, confirmed, 10)
	assert.Equal(t, 9, confirmed)
}

func TestExecute_RandomTransitionSequenceKeepsInvariant(t *testing.T) {
	e := newEnv(12)
	rng := rand.New(rand.NewSource(42))

	ids := make([]int64, 10)
	for i := range ids {
		ids[i] = e.bookings.add(10, 1+rng.Intn(4), domain.StatusPending)
	}

	targets := []domain.BookingStatus{domain.StatusConfirmed, domain.StatusCancelled}
	for i := 0; i < 200; i++ {
		id := ids[rng.Intn(len(ids))]
		target := targets[rng.Intn(len(targets))]

		_, _ = e.uc.Execute(context.Background(), &Request{
			BookingID:    id,
			TargetStatus: string(target),
		})

		// После каждой операции сумма подтверждённых туристов
		// не превышает вместимость выезда
		confirmed, err := e.bookings.SumConfirmedTravelers(context.Background(), 10)
		require.NoError(t, err)
		assert.LessOrEqual(t, confirmed, 12)
	}
}
