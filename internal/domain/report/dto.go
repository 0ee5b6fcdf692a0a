package report

import (
	"github.com/shopspring/decimal"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/payroll"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/validator"
)

// Kind selects the reporting window.
type Kind string

const (
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
	KindYearly  Kind = "yearly"
)

var Kinds = []string{
	string(KindDaily),
	string(KindWeekly),
	string(KindMonthly),
	string(KindYearly),
}

// CompanyReportRequest selects the period of a company-wide report. Date
// anchors daily/weekly reports; Year/Month anchor monthly and yearly ones.
type CompanyReportRequest struct {
	Kind  string
	Date  string
	Year  int
	Month int
}

func (r *CompanyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, Kinds) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of daily, weekly, monthly, yearly",
		})
	}

	switch Kind(r.Kind) {
	case KindDaily, KindWeekly:
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	case KindMonthly:
		if r.Month < 1 || r.Month > 12 {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be between 1 and 12",
			})
		}
		fallthrough
	case KindYearly:
		if r.Year < 2000 || r.Year > 2200 {
			errs = append(errs, validator.ValidationError{
				Field:   "year",
				Message: "year is out of range",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CompanyReport lists the period's active workers and folds every worker,
// active or not, into the company totals.
type CompanyReport struct {
	Kind          string                  `json:"type"`
	PeriodStart   string                  `json:"period_start"`
	PeriodEnd     string                  `json:"period_end"`
	CompanyName   string                  `json:"company_name"`
	CompanyLogo   *string                 `json:"company_logo,omitempty"`
	Workers       []payroll.WorkerSummary `json:"workers"`
	TotalHours    float64                 `json:"total_hours"`
	TotalEarned   decimal.Decimal         `json:"total_earned"`
	TotalAdvances decimal.Decimal         `json:"total_advances"`
	TotalNet      decimal.Decimal         `json:"total_net"`
}
