package settings

import (
	"github.com/shopspring/decimal"

	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/validator"
)

// SettingsResponse never carries the password hash.
type SettingsResponse struct {
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	CompanyName string          `json:"company_name"`
	CompanyLogo *string         `json:"company_logo,omitempty"`
}

type UpdateHourlyRateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

func (r *UpdateHourlyRateRequest) Validate() error {
	if !r.Rate.IsPositive() {
		return validator.ValidationErrors{{
			Field:   "rate",
			Message: "rate must be a positive number",
		}}
	}
	return nil
}

type UpdatePasswordRequest struct {
	Password string `json:"password"`
}

func (r *UpdatePasswordRequest) Validate() error {
	if len(r.Password) < 6 {
		return validator.ValidationErrors{{
			Field:   "password",
			Message: "password must be at least 6 characters",
		}}
	}
	return nil
}

type UpdateCompanyRequest struct {
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

func (r *UpdateCompanyRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{
			Field:   "name",
			Message: "name is required",
		}}
	}
	return nil
}
