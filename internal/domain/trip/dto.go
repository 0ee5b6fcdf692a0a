package trip

import (
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/validator"
)

type RecordTripRequest struct {
	DriverID      string  `json:"driverId"`
	FromLocation  string  `json:"fromLocation"`
	ToLocation    string  `json:"toLocation"`
	DepartureTime *string `json:"departureTime"`
	ArrivalTime   *string `json:"arrivalTime"`
	Date          string  `json:"date"`
	Notes         *string `json:"notes"`
}

func (r *RecordTripRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DriverID) {
		errs = append(errs, validator.ValidationError{
			Field:   "driverId",
			Message: "driverId is required",
		})
	}

	if validator.IsEmpty(r.ToLocation) {
		errs = append(errs, validator.ValidationError{
			Field:   "toLocation",
			Message: "toLocation is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.DepartureTime != nil && !validator.IsValidTimeOfDay(*r.DepartureTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "departureTime",
			Message: "departureTime must be in HH:MM:SS format",
		})
	}

	if r.ArrivalTime != nil && !validator.IsValidTimeOfDay(*r.ArrivalTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "arrivalTime",
			Message: "arrivalTime must be in HH:MM:SS format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TripResponse struct {
	ID            string  `json:"id"`
	WorkerID      string  `json:"worker_id"`
	FromLocation  string  `json:"from_location"`
	ToLocation    string  `json:"to_location"`
	DepartureTime *string `json:"departure_time,omitempty"`
	ArrivalTime   *string `json:"arrival_time,omitempty"`
	Date          string  `json:"date"`
	Notes         *string `json:"notes,omitempty"`
}

func ToTripResponse(t Trip) TripResponse {
	return TripResponse{
		ID:            t.ID,
		WorkerID:      t.WorkerID,
		FromLocation:  t.FromLocation,
		ToLocation:    t.ToLocation,
		DepartureTime: t.DepartureTime,
		ArrivalTime:   t.ArrivalTime,
		Date:          t.Date,
		Notes:         t.Notes,
	}
}
