package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/worker"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db database.Querier
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

// Create implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	query := `
		INSERT INTO workers (id, name, age, phone, national_id, hire_date, photo, hourly_rate, job_title)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.Name,
		w.Age,
		w.Phone,
		w.NationalID,
		w.HireDate,
		w.Photo,
		w.HourlyRate.String(),
		w.JobTitle,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return worker.Worker{}, worker.ErrNationalIDExists
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return r.GetByID(ctx, w.ID)
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	query := `
		SELECT id, name, age, phone, national_id, hire_date, photo, hourly_rate, job_title, created_at
		FROM workers
		WHERE id = ?
	`

	w, err := scanWorker(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

// List implements worker.WorkerRepository.
func (r *workerRepositoryImpl) List(ctx context.Context) ([]worker.Worker, error) {
	query := `
		SELECT id, name, age, phone, national_id, hire_date, photo, hourly_rate, job_title, created_at
		FROM workers
		ORDER BY name ASC
	`

	return r.listWorkers(ctx, query)
}

// ListByJobTitle implements worker.WorkerRepository.
func (r *workerRepositoryImpl) ListByJobTitle(ctx context.Context, jobTitle string) ([]worker.Worker, error) {
	query := `
		SELECT id, name, age, phone, national_id, hire_date, photo, hourly_rate, job_title, created_at
		FROM workers
		WHERE job_title = ?
		ORDER BY name ASC
	`

	return r.listWorkers(ctx, query, jobTitle)
}

// Delete implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM workers WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

func (r *workerRepositoryImpl) listWorkers(ctx context.Context, query string, args ...any) ([]worker.Worker, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workers, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorker(row rowScanner) (worker.Worker, error) {
	var w worker.Worker
	var rate string

	err := row.Scan(
		&w.ID,
		&w.Name,
		&w.Age,
		&w.Phone,
		&w.NationalID,
		&w.HireDate,
		&w.Photo,
		&rate,
		&w.JobTitle,
		&w.CreatedAt,
	)
	if err != nil {
		return worker.Worker{}, err
	}

	w.HourlyRate, err = decimal.NewFromString(rate)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("invalid hourly_rate %q: %w", rate, err)
	}

	return w, nil
}

// isUniqueViolation matches the driver's constraint error text; the workers
// table has a single UNIQUE constraint, on national_id.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
