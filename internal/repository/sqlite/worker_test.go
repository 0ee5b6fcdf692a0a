package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/advance"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/attendance"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/worker"
)

func TestWorkerCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkerRepository(db)
	ctx := context.Background()

	created := createTestWorker(t, db, "Samir")

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Samir", got.Name)
	assert.True(t, got.HourlyRate.Equal(decimal.RequireFromString("50")))
	assert.Equal(t, worker.DefaultJobTitle, got.JobTitle)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestWorkerGetMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkerRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestWorkerDuplicateNationalID(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkerRepository(db)
	ctx := context.Background()

	first := createTestWorker(t, db, "Samir")

	_, err := repo.Create(ctx, worker.Worker{
		ID:         uuid.NewString(),
		Name:       "Impostor",
		Age:        40,
		Phone:      "0123456780",
		NationalID: first.NationalID,
		HireDate:   "2021-01-01",
		HourlyRate: decimal.RequireFromString("60"),
		JobTitle:   worker.DefaultJobTitle,
	})
	assert.ErrorIs(t, err, worker.ErrNationalIDExists)
}

func TestWorkerListOrderedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkerRepository(db)

	createTestWorker(t, db, "Zaid")
	createTestWorker(t, db, "Amine")

	workers, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, workers, 2)
	assert.Equal(t, "Amine", workers[0].Name)
	assert.Equal(t, "Zaid", workers[1].Name)
}

func TestWorkerListByJobTitle(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkerRepository(db)
	ctx := context.Background()

	createTestWorker(t, db, "Samir")
	_, err := repo.Create(ctx, worker.Worker{
		ID:         uuid.NewString(),
		Name:       "Karim",
		Age:        35,
		Phone:      "0123456781",
		NationalID: "9999999999999",
		HireDate:   "2020-01-01",
		HourlyRate: decimal.RequireFromString("55"),
		JobTitle:   worker.JobTitleDriver,
	})
	require.NoError(t, err)

	drivers, err := repo.ListByJobTitle(ctx, worker.JobTitleDriver)
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, "Karim", drivers[0].Name)
}

func TestWorkerDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	workerRepo := NewWorkerRepository(db)
	attendanceRepo := NewAttendanceRepository(db)
	advanceRepo := NewAdvanceRepository(db)
	ctx := context.Background()

	w := createTestWorker(t, db, "Samir")

	_, err := attendanceRepo.Create(ctx, attendance.Record{
		ID:       uuid.NewString(),
		WorkerID: w.ID,
		Date:     "2025-06-02",
		CheckIn:  ptr("08:00:00"),
	})
	require.NoError(t, err)

	_, err = advanceRepo.Create(ctx, advance.Advance{
		ID:       uuid.NewString(),
		WorkerID: w.ID,
		Amount:   decimal.RequireFromString("100"),
		Date:     "2025-06-02",
	})
	require.NoError(t, err)

	require.NoError(t, workerRepo.Delete(ctx, w.ID))

	rec, err := attendanceRepo.GetByWorkerAndDate(ctx, w.ID, "2025-06-02")
	require.NoError(t, err)
	assert.Nil(t, rec)

	advances, err := advanceRepo.ListByWorker(ctx, w.ID)
	require.NoError(t, err)
	assert.Empty(t, advances)
}

func TestWorkerDeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkerRepository(db)

	err := repo.Delete(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}
