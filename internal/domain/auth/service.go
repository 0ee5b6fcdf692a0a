package auth

import "context"

// AuthService validates the admin password and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
