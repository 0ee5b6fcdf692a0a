package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("wrong password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
