package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// RecordEvent applies one clock event for today via the transition
	// function and persists the result
	RecordEvent(ctx context.Context, req RecordEventRequest) (RecordEventResponse, error)

	// AddBonus adds hours to a day's total outside the state machine. It is
	// additive (not idempotent) and creates the day record, without a
	// check-in, when none exists.
	AddBonus(ctx context.Context, req AddBonusRequest) error

	// Today returns the live per-worker overview for the current date
	Today(ctx context.Context) ([]TodayRow, error)

	// ResetToday deletes every record for the current date
	ResetToday(ctx context.Context) (int64, error)
}
