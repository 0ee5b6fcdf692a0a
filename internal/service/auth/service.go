package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/worksite-labs/timeclock-backend-go/internal/domain/auth"
	"github.com/worksite-labs/timeclock-backend-go/internal/domain/settings"
	"github.com/worksite-labs/timeclock-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	settings.SettingsRepository
	jwtService jwt.Service
}

func NewAuthService(settingsRepo settings.SettingsRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		SettingsRepository: settingsRepo,
		jwtService:         jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(req.Password)) != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAdminToken()
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return auth.LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
