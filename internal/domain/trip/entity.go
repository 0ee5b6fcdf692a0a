package trip

import "time"

// Trip is one driver journey: where from, where to, and optionally when the
// vehicle left and returned (time-of-day strings like attendance events).
type Trip struct {
	ID            string
	WorkerID      string
	FromLocation  string
	ToLocation    string
	DepartureTime *string
	ArrivalTime   *string
	Date          string // "YYYY-MM-DD"
	Notes         *string
	CreatedAt     time.Time
}
