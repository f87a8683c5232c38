package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or missing token")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrAdminRequired      = errors.New("admin privilege required")
)
