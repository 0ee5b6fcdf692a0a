package report

import (
	"context"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/attendance"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/payroll"
)

// ReportService composes per-worker payroll aggregates into period reports.
type ReportService interface {
	// Daily returns the raw attendance lines for one date
	Daily(ctx context.Context, date string) ([]attendance.DayRow, error)

	// Weekly aggregates the trailing 7-day window ending on the anchor date
	Weekly(ctx context.Context, anchorDate string) ([]payroll.WorkerSummary, error)

	// Monthly aggregates a full calendar month
	Monthly(ctx context.Context, year, month int) ([]payroll.WorkerSummary, error)

	// Yearly aggregates a full calendar year
	Yearly(ctx context.Context, year int) ([]payroll.WorkerSummary, error)

	// Company builds the company-wide report for any period kind
	Company(ctx context.Context, req CompanyReportRequest) (CompanyReport, error)
}
