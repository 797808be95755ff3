package auth

import "context"

// AuthService defines business logic for admin authentication
type AuthService interface {
	// Login verifies admin credentials and issues an access token
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Verify resolves the user behind a validated token's user_id claim
	Verify(ctx context.Context, userID string) (VerifyResponse, error)
}
