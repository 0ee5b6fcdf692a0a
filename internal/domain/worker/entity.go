package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultJobTitle = "worker"

// JobTitleDriver marks workers the trips feature applies to.
const JobTitleDriver = "driver"

type Worker struct {
	ID         string
	Name       string
	Age        int
	Phone      string
	NationalID string
	HireDate   string // "YYYY-MM-DD"
	Photo      *string
	HourlyRate decimal.Decimal
	JobTitle   string
	CreatedAt  time.Time
}
