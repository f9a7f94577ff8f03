package auth

import (
	"context"
)

// AuthService defines authentication for the single operator account
type AuthService interface {
	// Login verifies the configured credentials and issues a token pair
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)
}
