package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMS-BookingService/pkg/dbmetrics"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func() (*Repository, context.Context)) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// beginTx открывает транзакцию и кладёт её в контекст так же,
	// как это делает transaction manager
	beginTx := func() (*Repository, context.Context) {
		tx, err := db.Begin()
		require.NoError(t, err)
		return NewRepository(db), dbmetrics.WithTx(context.Background(), tx)
	}

	return NewRepository(db), mock, beginTx
}

func scheduleColumns() []string {
	return []string{"id", "tour_id", "date", "seats_total", "created_at", "updated_at"}
}

func TestGetByID_NoLockOutsideTransaction(t *testing.T) {
	repo, mock, _ := newMock(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM schedules WHERE id = \$1$`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(scheduleColumns()).
			AddRow(int64(10), int64(1), now, 10, now, now))

	schedule, err := repo.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), schedule.ID)
	assert.Equal(t, 10, schedule.SeatsTotal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_LocksRowInsideTransaction(t *testing.T) {
	_, mock, beginTx := newMock(t)

	mock.ExpectBegin()
	repo, ctx := beginTx()

	// Внутри транзакции строка выезда блокируется на время
	// проверки вместимости
	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM schedules WHERE id = \$1 FOR UPDATE$`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(scheduleColumns()).
			AddRow(int64(10), int64(1), now, 10, now, now))

	_, err := repo.GetByID(ctx, 10)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, _ := newMock(t)

	mock.ExpectQuery("SELECT .+ FROM schedules").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(scheduleColumns()))

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestList_FiltersByTour(t *testing.T) {
	repo, mock, _ := newMock(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM schedules WHERE tour_id = \$1 ORDER BY date ASC`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(scheduleColumns()).
			AddRow(int64(10), int64(1), now, 10, now, now).
			AddRow(int64(11), int64(1), now.AddDate(0, 1, 0), 20, now, now))

	tourID := int64(1)
	schedules, err := repo.List(context.Background(), &tourID)
	require.NoError(t, err)
	require.Len(t, schedules, 2)
	assert.Equal(t, 20, schedules[1].SeatsTotal)
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, _ := newMock(t)

	mock.ExpectExec("DELETE FROM schedules").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
