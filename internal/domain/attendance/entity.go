package attendance

import (
	"time"
)

// EventType is a clock event a worker can record for the day.
type EventType string

const (
	EventCheckIn  EventType = "check_in"
	EventLunchOut EventType = "lunch_out"
	EventLunchIn  EventType = "lunch_in"
	EventCheckOut EventType = "check_out"
)

var EventTypes = []string{
	string(EventCheckIn),
	string(EventLunchOut),
	string(EventLunchIn),
	string(EventCheckOut),
}

// Record is one worker's clock-event row for a single calendar date. The
// time-of-day fields hold "HH:MM:SS" strings; Date holds "YYYY-MM-DD".
// TotalHours stays 0 until check_out is recorded (bonus hours excepted).
type Record struct {
	ID         string
	WorkerID   string
	Date       string
	CheckIn    *string
	LunchOut   *string
	LunchIn    *string
	CheckOut   *string
	TotalHours float64
	CreatedAt  time.Time

	// Joined for listings
	WorkerName *string
}
