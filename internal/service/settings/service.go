package settings

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/settings"
)

// Defaults seeded on first start. The password is meant to be changed from
// the settings screen right away.
const (
	DefaultHourlyRate    = "50"
	DefaultAdminPassword = "admin123"
	DefaultCompanyName   = "My Company"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: settingsRepo}
}

// Seed inserts the default settings row when the database is fresh.
func Seed(ctx context.Context, repo settings.SettingsRepository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}
	return repo.EnsureDefaults(ctx, settings.Settings{
		HourlyRate:        decimal.RequireFromString(DefaultHourlyRate),
		AdminPasswordHash: string(hash),
		CompanyName:       DefaultCompanyName,
	})
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.SettingsResponse, error) {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}
	return settings.SettingsResponse{
		HourlyRate:  cfg.HourlyRate,
		CompanyName: cfg.CompanyName,
		CompanyLogo: cfg.CompanyLogo,
	}, nil
}

// SetHourlyRate implements settings.SettingsService.
func (s *SettingsServiceImpl) SetHourlyRate(ctx context.Context, req settings.UpdateHourlyRateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.SettingsRepository.UpdateHourlyRate(ctx, req.Rate)
}

// SetPassword implements settings.SettingsService.
func (s *SettingsServiceImpl) SetPassword(ctx context.Context, req settings.UpdatePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.SettingsRepository.UpdatePasswordHash(ctx, string(hash))
}

// SetCompanyProfile implements settings.SettingsService.
func (s *SettingsServiceImpl) SetCompanyProfile(ctx context.Context, req settings.UpdateCompanyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.SettingsRepository.UpdateCompanyProfile(ctx, req.Name, req.Logo)
}
