package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance is a cash sum paid to a worker ahead of settlement. Rows are
// created freely and never mutated; payroll deducts them from net pay for
// any range containing their date.
type Advance struct {
	ID        string
	WorkerID  string
	Amount    decimal.Decimal
	Date      string // "YYYY-MM-DD"
	Notes     *string
	CreatedAt time.Time

	// Joined for listings
	WorkerName *string
}
