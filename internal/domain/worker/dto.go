package worker

import (
	"github.com/shopspring/decimal"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/attendance"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// WORKER DTOs
// ========================================

type CreateWorkerRequest struct {
	Name       string           `json:"name"`
	Age        int              `json:"age"`
	Phone      string           `json:"phone"`
	NationalID string           `json:"national_id"`
	HireDate   string           `json:"date_joined"`
	Photo      *string          `json:"photo"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
	JobTitle   string           `json:"job_title"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Age < 14 || r.Age > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "age",
			Message: "age must be between 14 and 100",
		})
	}

	if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone number is invalid",
		})
	}

	if !validator.IsValidNationalID(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national id is invalid",
		})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_joined",
			Message: "date_joined must be in YYYY-MM-DD format",
		})
	}

	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Age        int             `json:"age"`
	Phone      string          `json:"phone"`
	NationalID string          `json:"national_id"`
	HireDate   string          `json:"date_joined"`
	Photo      *string         `json:"photo,omitempty"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	JobTitle   string          `json:"job_title"`
}

func ToWorkerResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:         w.ID,
		Name:       w.Name,
		Age:        w.Age,
		Phone:      w.Phone,
		NationalID: w.NationalID,
		HireDate:   w.HireDate,
		Photo:      w.Photo,
		HourlyRate: w.HourlyRate,
		JobTitle:   w.JobTitle,
	}
}

// PeriodReportResponse is the per-worker attendance report for a trailing
// period ending today.
type PeriodReportResponse struct {
	Attendance []attendance.RecordResponse `json:"attendance"`
	Summary    PeriodReportSummary         `json:"summary"`
}

type PeriodReportSummary struct {
	TotalHours float64 `json:"totalHours"`
	DaysWorked int     `json:"daysWorked"`
}
