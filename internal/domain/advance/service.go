package advance

import (
	"context"

	"github.com/shopspring/decimal"
)

// AdvanceService defines business logic for cash advances.
type AdvanceService interface {
	Create(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)

	ListByWorker(ctx context.Context, workerID string) ([]AdvanceResponse, error)

	TotalInRange(ctx context.Context, workerID, start, end string) (decimal.Decimal, error)
}
