package settings

import "context"

// SettingsService defines business logic for the settings singleton.
type SettingsService interface {
	Get(ctx context.Context) (SettingsResponse, error)

	SetHourlyRate(ctx context.Context, req UpdateHourlyRateRequest) error

	SetPassword(ctx context.Context, req UpdatePasswordRequest) error

	SetCompanyProfile(ctx context.Context, req UpdateCompanyRequest) error
}
