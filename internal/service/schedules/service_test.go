package schedules

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMS-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/schedule"
	tourRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/tour"
	"github.com/m04kA/TMS-BookingService/internal/service/schedules/models"
	"github.com/m04kA/TMS-BookingService/pkg/ptr"
)

// ---- фейки ----

type fakeScheduleRepo struct {
	nextID    int64
	schedules map[int64]*domain.Schedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{nextID: 1, schedules: map[int64]*domain.Schedule{}}
}

func (r *fakeScheduleRepo) Create(_ context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	created := *s
	created.ID = r.nextID
	r.nextID++
	r.schedules[created.ID] = &created
	result := created
	return &result, nil
}

func (r *fakeScheduleRepo) GetByID(_ context.Context, id int64) (*domain.Schedule, error) {
	s, ok := r.schedules[id]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeScheduleRepo) List(_ context.Context, tourID *int64) ([]*domain.Schedule, error) {
	result := make([]*domain.Schedule, 0)
	for id := int64(1); id < r.nextID; id++ {
		s, ok := r.schedules[id]
		if !ok {
			continue
		}
		if tourID != nil && s.TourID != *tourID {
			continue
		}
		copied := *s
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeScheduleRepo) Update(_ context.Context, id int64, date *time.Time, seatsTotal *int) (*domain.Schedule, error) {
	s, ok := r.schedules[id]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	if date != nil {
		s.Date = *date
	}
	if seatsTotal != nil {
		s.SeatsTotal = *seatsTotal
	}
	copied := *s
	return &copied, nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.schedules[id]; !ok {
		return scheduleRepo.ErrScheduleNotFound
	}
	delete(r.schedules, id)
	return nil
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

type fakeBookingRepo struct {
	confirmed map[int64]int
	counts    map[int64]int
}

func (r *fakeBookingRepo) SumConfirmedTravelers(_ context.Context, scheduleID int64) (int, error) {
	return r.confirmed[scheduleID], nil
}

func (r *fakeBookingRepo) CountBySchedule(_ context.Context, scheduleID int64) (int, error) {
	return r.counts[scheduleID], nil
}

// recordingLogger запоминает warn-сообщения для проверок
type recordingLogger struct {
	warns []string
}

func (l *recordingLogger) Info(string, ...interface{}) {}
func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}
func (l *recordingLogger) Error(string, ...interface{}) {}

type env struct {
	svc       *Service
	schedules *fakeScheduleRepo
	tours     *fakeTourRepo
	bookings  *fakeBookingRepo
	log       *recordingLogger
}

func newEnv() *env {
	schedules := newFakeScheduleRepo()
	tours := &fakeTourRepo{tours: map[int64]*domain.Tour{
		1: {ID: 1, Name: "Тур", Destination: "Турция", Region: "Анталья", Price: 100, DurationDays: 7},
	}}
	bookings := &fakeBookingRepo{confirmed: map[int64]int{}, counts: map[int64]int{}}
	log := &recordingLogger{}

	svc := NewService(schedules, tours, bookings, log)
	return &env{svc: svc, schedules: schedules, tours: tours, bookings: bookings, log: log}
}

func futureDate() time.Time {
	return time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
}

// ---- тесты ----

func TestCreate(t *testing.T) {
	e := newEnv()

	resp, err := e.svc.Create(context.Background(), &models.CreateScheduleRequest{
		TourID:     1,
		Date:       futureDate(),
		SeatsTotal: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.SeatsTotal)
	// У нового выезда все места свободны
	assert.Equal(t, 10, resp.SeatsAvailable)
}

func TestCreate_Validation(t *testing.T) {
	e := newEnv()

	_, err := e.svc.Create(context.Background(), &models.CreateScheduleRequest{
		TourID: 1, Date: futureDate(), SeatsTotal: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.svc.Create(context.Background(), &models.CreateScheduleRequest{
		TourID: 1, SeatsTotal: 10,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.svc.Create(context.Background(), &models.CreateScheduleRequest{
		TourID: 42, Date: futureDate(), SeatsTotal: 10,
	})
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestList_DerivesSeats(t *testing.T) {
	e := newEnv()
	s1, _ := e.svc.Create(context.Background(), &models.CreateScheduleRequest{TourID: 1, Date: futureDate(), SeatsTotal: 10})
	s2, _ := e.svc.Create(context.Background(), &models.CreateScheduleRequest{TourID: 1, Date: futureDate().AddDate(0, 1, 0), SeatsTotal: 5})

	e.bookings.confirmed[s1.ID] = 4
	e.bookings.confirmed[s2.ID] = 5

	result, err := e.svc.List(context.Background(), ptr.Ptr(int64(1)))
	require.NoError(t, err)
	require.Len(t, result.Schedules, 2)
	assert.Equal(t, 6, result.Schedules[0].SeatsAvailable)
	assert.Equal(t, 0, result.Schedules[1].SeatsAvailable)
}

func TestUpdate_AllowsSeatsBelowConfirmed(t *testing.T) {
	e := newEnv()
	created, _ := e.svc.Create(context.Background(), &models.CreateScheduleRequest{TourID: 1, Date: futureDate(), SeatsTotal: 10})
	e.bookings.confirmed[created.ID] = 8

	// Снижение вместимости ниже проданного допускается,
	// остаток становится отрицательным
	resp, err := e.svc.Update(context.Background(), created.ID, &models.UpdateScheduleRequest{
		SeatsTotal: ptr.Ptr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.SeatsTotal)
	assert.Equal(t, -3, resp.SeatsAvailable)
}

func TestUpdate_NothingToUpdate(t *testing.T) {
	e := newEnv()
	created, _ := e.svc.Create(context.Background(), &models.CreateScheduleRequest{TourID: 1, Date: futureDate(), SeatsTotal: 10})

	_, err := e.svc.Update(context.Background(), created.ID, &models.UpdateScheduleRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_WarnsAboutOrphanedBookings(t *testing.T) {
	e := newEnv()
	created, _ := e.svc.Create(context.Background(), &models.CreateScheduleRequest{TourID: 1, Date: futureDate(), SeatsTotal: 10})
	e.bookings.counts[created.ID] = 3

	err := e.svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)

	// Удаление безусловное, но факт осиротевших броней фиксируется в логе
	require.Len(t, e.log.warns, 1)
	assert.Contains(t, e.log.warns[0], "3 bookings")
}

func TestDelete_NotFound(t *testing.T) {
	e := newEnv()

	err := e.svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
