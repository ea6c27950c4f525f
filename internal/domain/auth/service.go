package auth

import "context"

// AuthService defines the minimal credential contract needed to gate
// attendance actions: issue, rotate and revoke bearer tokens.
type AuthService interface {
	// Login verifies email/password credentials and issues a token pair
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh rotates a valid refresh token into a new token pair
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the given refresh token
	Logout(ctx context.Context, refreshToken string) error
}
