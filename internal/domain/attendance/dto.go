package attendance

import (
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type RecordEventRequest struct {
	WorkerID string `json:"workerId"`
	Type     string `json:"type"`
}

func (r *RecordEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "workerId",
			Message: "workerId is required",
		})
	}

	if !validator.IsInSlice(r.Type, EventTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of check_in, lunch_out, lunch_in, check_out",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddBonusRequest struct {
	WorkerID   string  `json:"workerId"`
	BonusHours float64 `json:"bonusHours"`
	Date       string  `json:"date"`
}

func (r *AddBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "workerId",
			Message: "workerId is required",
		})
	}

	if r.BonusHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "bonusHours",
			Message: "bonusHours must be a positive number",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordEventResponse struct {
	Success    bool     `json:"success"`
	Time       string   `json:"time"`
	TotalHours *float64 `json:"totalHours,omitempty"`
}

// TodayRow is one line of the kiosk's live overview: every worker appears,
// with nil clock fields for those who have not checked in.
type TodayRow struct {
	WorkerID   string   `json:"id"`
	Name       string   `json:"name"`
	JobTitle   string   `json:"job_title"`
	CheckIn    *string  `json:"check_in"`
	LunchOut   *string  `json:"lunch_out"`
	LunchIn    *string  `json:"lunch_in"`
	CheckOut   *string  `json:"check_out"`
	TotalHours *float64 `json:"total_hours"`
}

// DayRow is one attendance line of the daily report.
type DayRow struct {
	Name       string  `json:"name"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	TotalHours float64 `json:"total_hours"`
}

// RecordResponse is the raw attendance row shape used by worker reports.
type RecordResponse struct {
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in"`
	LunchOut   *string `json:"lunch_out,omitempty"`
	LunchIn    *string `json:"lunch_in,omitempty"`
	CheckOut   *string `json:"check_out"`
	TotalHours float64 `json:"total_hours"`
}

func ToRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		Date:       rec.Date,
		CheckIn:    rec.CheckIn,
		LunchOut:   rec.LunchOut,
		LunchIn:    rec.LunchIn,
		CheckOut:   rec.CheckOut,
		TotalHours: rec.TotalHours,
	}
}
