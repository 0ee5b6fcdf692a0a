package sqlite

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/settings"
)

func seedSettings(t *testing.T, repo settings.SettingsRepository) {
	t.Helper()

	err := repo.EnsureDefaults(context.Background(), settings.Settings{
		HourlyRate:        decimal.RequireFromString("50"),
		AdminPasswordHash: "$2a$10$hash",
		CompanyName:       "Worksite Ltd",
	})
	require.NoError(t, err)
}

func TestSettingsGetBeforeSeed(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, settings.ErrSettingsNotFound)
}

func TestSettingsEnsureDefaultsIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	seedSettings(t, repo)

	require.NoError(t, repo.UpdateHourlyRate(ctx, decimal.RequireFromString("75")))

	// A second seed must not clobber the updated row.
	seedSettings(t, repo)

	cfg, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.HourlyRate.Equal(decimal.RequireFromString("75")))
}

func TestSettingsUpdates(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	seedSettings(t, repo)

	require.NoError(t, repo.UpdatePasswordHash(ctx, "$2a$10$other"))
	logo := "logo.png"
	require.NoError(t, repo.UpdateCompanyProfile(ctx, "Renamed Ltd", &logo))

	cfg, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$other", cfg.AdminPasswordHash)
	assert.Equal(t, "Renamed Ltd", cfg.CompanyName)
	require.NotNil(t, cfg.CompanyLogo)
	assert.Equal(t, "logo.png", *cfg.CompanyLogo)
}

func TestSettingsUpdateBeforeSeed(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)

	err := repo.UpdateHourlyRate(context.Background(), decimal.RequireFromString("75"))
	assert.ErrorIs(t, err, settings.ErrSettingsNotFound)
}
