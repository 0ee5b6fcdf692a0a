package sqlite

import (
	"context"
	"fmt"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/trip"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/database"
)

type tripRepositoryImpl struct {
	db database.Querier
}

func NewTripRepository(db *database.DB) trip.TripRepository {
	return &tripRepositoryImpl{db: db}
}

// Create implements trip.TripRepository.
func (r *tripRepositoryImpl) Create(ctx context.Context, t trip.Trip) (trip.Trip, error) {
	query := `
		INSERT INTO driver_trips (id, worker_id, from_location, to_location, departure_time, arrival_time, date, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.WorkerID,
		t.FromLocation,
		t.ToLocation,
		t.DepartureTime,
		t.ArrivalTime,
		t.Date,
		t.Notes,
	)
	if err != nil {
		return trip.Trip{}, fmt.Errorf("failed to create trip: %w", err)
	}

	return t, nil
}

// ListByDriverAndDate implements trip.TripRepository.
func (r *tripRepositoryImpl) ListByDriverAndDate(ctx context.Context, driverID, date string) ([]trip.Trip, error) {
	query := `
		SELECT id, worker_id, from_location, to_location, departure_time, arrival_time, date, notes, created_at
		FROM driver_trips
		WHERE worker_id = ? AND date = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, driverID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []trip.Trip
	for rows.Next() {
		var t trip.Trip
		err := rows.Scan(
			&t.ID,
			&t.WorkerID,
			&t.FromLocation,
			&t.ToLocation,
			&t.DepartureTime,
			&t.ArrivalTime,
			&t.Date,
			&t.Notes,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return trips, nil
}
