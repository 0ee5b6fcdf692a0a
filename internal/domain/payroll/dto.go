package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/advance"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/attendance"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/worker"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/timeutil"
)

// Period is an inclusive date range, both bounds "YYYY-MM-DD".
type Period struct {
	Start string
	End   string
}

// WorkerSummary is one worker's payroll aggregate over a period. Values are
// carried unrounded; Rounded() is applied when the summary is presented.
type WorkerSummary struct {
	WorkerID      string          `json:"worker_id"`
	Name          string          `json:"name"`
	JobTitle      string          `json:"job_title"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	DaysPresent   int             `json:"days_present"`
	DaysAbsent    int             `json:"days_absent"`
	TotalHours    float64         `json:"total_hours"`
	Earned        decimal.Decimal `json:"earned"`
	TotalAdvances decimal.Decimal `json:"advances"`
	NetAmount     decimal.Decimal `json:"net_amount"`
}

// Rounded returns a presentation copy with hours and money figures rounded
// to 2 decimal places.
func (s WorkerSummary) Rounded() WorkerSummary {
	s.TotalHours = timeutil.Round2(s.TotalHours)
	s.Earned = s.Earned.Round(2)
	s.TotalAdvances = s.TotalAdvances.Round(2)
	s.NetAmount = s.NetAmount.Round(2)
	return s
}

// Active reports whether the worker did anything in the period: nonzero
// hours or advances. Inactive workers are hidden from company listings but
// still counted into company totals.
func (s WorkerSummary) Active() bool {
	return s.TotalHours != 0 || !s.TotalAdvances.IsZero()
}

// FullReportResponse is the single-worker monthly statement: the aggregate
// plus the raw attendance and advance rows it was computed from.
type FullReportResponse struct {
	Worker      worker.WorkerResponse       `json:"worker"`
	PeriodStart string                      `json:"period_start"`
	PeriodEnd   string                      `json:"period_end"`
	Summary     WorkerSummary               `json:"summary"`
	Attendance  []attendance.RecordResponse `json:"attendance"`
	Advances    []advance.AdvanceResponse   `json:"advances"`
}
