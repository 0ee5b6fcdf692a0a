package advance

import (
	"context"

	"github.com/shopspring/decimal"
)

// AdvanceRepository defines data access methods for cash advances.
type AdvanceRepository interface {
	Create(ctx context.Context, a Advance) (Advance, error)

	// ListByWorker returns a worker's advances newest first
	ListByWorker(ctx context.Context, workerID string) ([]Advance, error)

	// ListByWorkerAndRange returns a worker's advances with date in [start, end]
	ListByWorkerAndRange(ctx context.Context, workerID, start, end string) ([]Advance, error)

	// TotalInRange sums a worker's advance amounts with date in [start, end]
	TotalInRange(ctx context.Context, workerID, start, end string) (decimal.Decimal, error)
}
