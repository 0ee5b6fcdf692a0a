package settings

import (
	"context"

	"github.com/shopspring/decimal"
)

// SettingsRepository manages the singleton settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (Settings, error)

	// EnsureDefaults inserts the default row when none exists
	EnsureDefaults(ctx context.Context, defaults Settings) error

	UpdateHourlyRate(ctx context.Context, rate decimal.Decimal) error

	UpdatePasswordHash(ctx context.Context, hash string) error

	UpdateCompanyProfile(ctx context.Context, name string, logo *string) error
}
