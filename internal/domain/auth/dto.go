package auth

import "github.com/worksite-labs/timeclock-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if validator.IsEmpty(r.Password) {
		return validator.ValidationErrors{{
			Field:   "password",
			Message: "password is required",
		}}
	}
	return nil
}

type LoginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
