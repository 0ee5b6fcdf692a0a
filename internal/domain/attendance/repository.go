package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new day record
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByWorkerAndDate returns the record for (worker, date), or (nil, nil)
	// when the worker has no record for that date
	GetByWorkerAndDate(ctx context.Context, workerID, date string) (*Record, error)

	// Update overwrites the clock fields and total hours of an existing record
	Update(ctx context.Context, rec Record) error

	// ListByWorkerAndRange returns a worker's records with date in
	// [start, end], newest first
	ListByWorkerAndRange(ctx context.Context, workerID, start, end string) ([]Record, error)

	// ListByDate returns all records for one date with worker names joined
	ListByDate(ctx context.Context, date string) ([]Record, error)

	// TodayOverview returns one row per worker for the given date, including
	// workers without a record (LEFT JOIN semantics)
	TodayOverview(ctx context.Context, date string) ([]TodayRow, error)

	// DeleteByDate removes every record for the given date and reports how
	// many rows were removed
	DeleteByDate(ctx context.Context, date string) (int64, error)
}
