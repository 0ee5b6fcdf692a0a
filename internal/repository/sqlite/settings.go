package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/settings"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db database.Querier
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (settings.Settings, error) {
	query := `
		SELECT hourly_rate, admin_password_hash, company_name, company_logo
		FROM settings
		WHERE id = 1
	`

	var cfg settings.Settings
	var rate string
	err := r.db.QueryRowContext(ctx, query).Scan(
		&rate,
		&cfg.AdminPasswordHash,
		&cfg.CompanyName,
		&cfg.CompanyLogo,
	)
	if err == sql.ErrNoRows {
		return settings.Settings{}, settings.ErrSettingsNotFound
	}
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	cfg.HourlyRate, err = decimal.NewFromString(rate)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("invalid hourly_rate %q: %w", rate, err)
	}

	return cfg, nil
}

// EnsureDefaults implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) EnsureDefaults(ctx context.Context, defaults settings.Settings) error {
	query := `
		INSERT INTO settings (id, hourly_rate, admin_password_hash, company_name, company_logo)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		defaults.HourlyRate.String(),
		defaults.AdminPasswordHash,
		defaults.CompanyName,
		defaults.CompanyLogo,
	)
	if err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	return nil
}

// UpdateHourlyRate implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) UpdateHourlyRate(ctx context.Context, rate decimal.Decimal) error {
	return r.update(ctx, `UPDATE settings SET hourly_rate = ? WHERE id = 1`, rate.String())
}

// UpdatePasswordHash implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) UpdatePasswordHash(ctx context.Context, hash string) error {
	return r.update(ctx, `UPDATE settings SET admin_password_hash = ? WHERE id = 1`, hash)
}

// UpdateCompanyProfile implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) UpdateCompanyProfile(ctx context.Context, name string, logo *string) error {
	return r.update(ctx, `UPDATE settings SET company_name = ?, company_logo = ? WHERE id = 1`, name, logo)
}

func (r *settingsRepositoryImpl) update(ctx context.Context, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return settings.ErrSettingsNotFound
	}

	return nil
}
