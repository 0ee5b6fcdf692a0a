package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/advance"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/database"
)

type advanceRepositoryImpl struct {
	db database.Querier
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepositoryImpl{db: db}
}

// Create implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	query := `
		INSERT INTO advances (id, worker_id, amount, date, notes)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.WorkerID,
		a.Amount.String(),
		a.Date,
		a.Notes,
	)
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return a, nil
}

// ListByWorker implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) ListByWorker(ctx context.Context, workerID string) ([]advance.Advance, error) {
	query := `
		SELECT id, worker_id, amount, date, notes, created_at
		FROM advances
		WHERE worker_id = ?
		ORDER BY date DESC, created_at DESC
	`

	return r.listAdvances(ctx, query, workerID)
}

// ListByWorkerAndRange implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) ListByWorkerAndRange(ctx context.Context, workerID, start, end string) ([]advance.Advance, error) {
	query := `
		SELECT id, worker_id, amount, date, notes, created_at
		FROM advances
		WHERE worker_id = ? AND date BETWEEN ? AND ?
		ORDER BY date DESC, created_at DESC
	`

	return r.listAdvances(ctx, query, workerID, start, end)
}

// TotalInRange implements advance.AdvanceRepository. Amounts are stored as
// decimal strings, so the sum is computed here rather than in SQL.
func (r *advanceRepositoryImpl) TotalInRange(ctx context.Context, workerID, start, end string) (decimal.Decimal, error) {
	advances, err := r.ListByWorkerAndRange(ctx, workerID, start, end)
	if err != nil {
		return decimal.Decimal{}, err
	}

	total := decimal.Zero
	for _, a := range advances {
		total = total.Add(a.Amount)
	}
	return total, nil
}

func (r *advanceRepositoryImpl) listAdvances(ctx context.Context, query string, args ...any) ([]advance.Advance, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return advances, nil
}

func scanAdvance(rows *sql.Rows) (advance.Advance, error) {
	var a advance.Advance
	var amount string

	err := rows.Scan(
		&a.ID,
		&a.WorkerID,
		&amount,
		&a.Date,
		&a.Notes,
		&a.CreatedAt,
	)
	if err != nil {
		return advance.Advance{}, err
	}

	a.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return advance.Advance{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	return a, nil
}
