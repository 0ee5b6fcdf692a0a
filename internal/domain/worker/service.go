package worker

import "context"

// WorkerService defines business logic for the worker directory.
type WorkerService interface {
	Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)

	Get(ctx context.Context, id string) (WorkerResponse, error)

	List(ctx context.Context) ([]WorkerResponse, error)

	// ListDrivers returns workers whose job title marks them as drivers
	ListDrivers(ctx context.Context) ([]WorkerResponse, error)

	Delete(ctx context.Context, id string) error

	// PeriodReport returns the worker's raw attendance and hour totals for a
	// trailing period ("daily", "monthly" or "yearly") ending today
	PeriodReport(ctx context.Context, id, period string) (PeriodReportResponse, error)
}
