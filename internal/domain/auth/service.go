package auth

import "context"

// AuthService defines the identity provider surface. The attendance engine
// trusts the subject identity carried in the verified token claims.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
