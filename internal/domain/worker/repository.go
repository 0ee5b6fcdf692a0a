package worker

import "context"

// WorkerRepository defines data access methods for the worker directory.
type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)

	GetByID(ctx context.Context, id string) (Worker, error)

	// List returns all workers ordered by name
	List(ctx context.Context) ([]Worker, error)

	// ListByJobTitle returns workers with the given job title, ordered by name
	ListByJobTitle(ctx context.Context, jobTitle string) ([]Worker, error)

	// Delete removes the worker; attendance, advances and trips cascade
	Delete(ctx context.Context, id string) error
}
