package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/attendance"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db database.Querier
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	query := `
		INSERT INTO attendance (id, worker_id, date, check_in, lunch_out, lunch_in, check_out, total_hours)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.WorkerID,
		rec.Date,
		rec.CheckIn,
		rec.LunchOut,
		rec.LunchIn,
		rec.CheckOut,
		rec.TotalHours,
	)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByWorkerAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByWorkerAndDate(ctx context.Context, workerID, date string) (*attendance.Record, error) {
	query := `
		SELECT id, worker_id, date, check_in, lunch_out, lunch_in, check_out, total_hours, created_at
		FROM attendance
		WHERE worker_id = ? AND date = ?
	`

	var rec attendance.Record
	err := r.db.QueryRowContext(ctx, query, workerID, date).Scan(
		&rec.ID,
		&rec.WorkerID,
		&rec.Date,
		&rec.CheckIn,
		&rec.LunchOut,
		&rec.LunchIn,
		&rec.CheckOut,
		&rec.TotalHours,
		&rec.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, rec attendance.Record) error {
	query := `
		UPDATE attendance
		SET check_in = ?, lunch_out = ?, lunch_in = ?, check_out = ?, total_hours = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		rec.CheckIn,
		rec.LunchOut,
		rec.LunchIn,
		rec.CheckOut,
		rec.TotalHours,
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// ListByWorkerAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByWorkerAndRange(ctx context.Context, workerID, start, end string) ([]attendance.Record, error) {
	query := `
		SELECT id, worker_id, date, check_in, lunch_out, lunch_in, check_out, total_hours, created_at
		FROM attendance
		WHERE worker_id = ? AND date BETWEEN ? AND ?
		ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, workerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows, false)
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	query := `
		SELECT a.id, a.worker_id, a.date, a.check_in, a.lunch_out, a.lunch_in, a.check_out, a.total_hours, a.created_at, w.name
		FROM attendance a
		JOIN workers w ON w.id = a.worker_id
		WHERE a.date = ?
		ORDER BY w.name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows, true)
}

// TodayOverview implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) TodayOverview(ctx context.Context, date string) ([]attendance.TodayRow, error) {
	query := `
		SELECT w.id, w.name, w.job_title, a.check_in, a.lunch_out, a.lunch_in, a.check_out, a.total_hours
		FROM workers w
		LEFT JOIN attendance a ON a.worker_id = w.id AND a.date = ?
		ORDER BY w.name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's overview: %w", err)
	}
	defer rows.Close()

	var out []attendance.TodayRow
	for rows.Next() {
		var row attendance.TodayRow
		err := rows.Scan(
			&row.WorkerID,
			&row.Name,
			&row.JobTitle,
			&row.CheckIn,
			&row.LunchOut,
			&row.LunchIn,
			&row.CheckOut,
			&row.TotalHours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overview row: %w", err)
		}
		out = append(out, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return out, nil
}

// DeleteByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteByDate(ctx context.Context, date string) (int64, error) {
	query := `DELETE FROM attendance WHERE date = ?`

	result, err := r.db.ExecContext(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected, nil
}

func scanRecords(rows *sql.Rows, withWorkerName bool) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		dest := []any{
			&rec.ID,
			&rec.WorkerID,
			&rec.Date,
			&rec.CheckIn,
			&rec.LunchOut,
			&rec.LunchIn,
			&rec.CheckOut,
			&rec.TotalHours,
			&rec.CreatedAt,
		}
		if withWorkerName {
			dest = append(dest, &rec.WorkerName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
