package advance

import (
	"github.com/shopspring/decimal"

	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/validator"
)

type CreateAdvanceRequest struct {
	WorkerID string          `json:"worker_id"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
	Notes    *string         `json:"notes"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a positive number",
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

type AdvanceResponse struct {
	ID         string          `json:"id"`
	WorkerID   string          `json:"worker_id"`
	WorkerName *string         `json:"worker_name,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Notes      *string         `json:"notes,omitempty"`
}

func ToAdvanceResponse(a Advance) AdvanceResponse {
	return AdvanceResponse{
		ID:         a.ID,
		WorkerID:   a.WorkerID,
		WorkerName: a.WorkerName,
		Amount:     a.Amount,
		Date:       a.Date,
		Notes:      a.Notes,
	}
}

type TotalResponse struct {
	Total decimal.Decimal `json:"total"`
}
