package sqlite

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/worker"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/database"
)

var nationalIDSeq atomic.Int64

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.InitSchema(context.Background()))
	return db
}

func createTestWorker(t *testing.T, db *database.DB, name string) worker.Worker {
	t.Helper()

	w, err := NewWorkerRepository(db).Create(context.Background(), worker.Worker{
		ID:         uuid.NewString(),
		Name:       name,
		Age:        30,
		Phone:      "0123456789",
		NationalID: fmt.Sprintf("9%012d", nationalIDSeq.Add(1)),
		HireDate:   "2020-01-01",
		HourlyRate: decimal.RequireFromString("50"),
		JobTitle:   worker.DefaultJobTitle,
	})
	require.NoError(t, err)
	return w
}

func ptr(s string) *string { return &s }
