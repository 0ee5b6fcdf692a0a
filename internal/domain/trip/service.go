package trip

import "context"

// TripService defines business logic for driver trips.
type TripService interface {
	Record(ctx context.Context, req RecordTripRequest) (TripResponse, error)

	// Today returns the driver's trips for the current date
	Today(ctx context.Context, driverID string) ([]TripResponse, error)
}
