package trip

import "context"

// TripRepository defines data access methods for driver trips.
type TripRepository interface {
	Create(ctx context.Context, t Trip) (Trip, error)

	// ListByDriverAndDate returns a driver's trips for one date in creation order
	ListByDriverAndDate(ctx context.Context, driverID, date string) ([]Trip, error)
}
