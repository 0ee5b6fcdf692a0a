package payroll

import "context"

// PayrollService aggregates attendance, advances and rates into pay figures.
type PayrollService interface {
	// Summarize computes one worker's aggregate over the period
	Summarize(ctx context.Context, workerID string, period Period) (WorkerSummary, error)

	// SummarizeAll computes the aggregate for every worker in the directory
	SummarizeAll(ctx context.Context, period Period) ([]WorkerSummary, error)

	// FullReport returns the single-worker statement for a calendar month
	FullReport(ctx context.Context, workerID string, year, month int) (FullReportResponse, error)
}
