package services

import (
	"context"
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
)

// TokenSvcFacade handles JWT access tokens and opaque refresh tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user, returning the
	// token and its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a new opaque refresh token and persists its
	// hash against the user, returning the raw token and its expiry.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken checks a raw refresh token against the user's
	// stored hash and expiry, returning the user on success.
	ValidateRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error)
}

// GoogleOAuthIdentity is the subset of the verified ID token the application
// cares about.
type GoogleOAuthIdentity struct {
	Subject     string
	Email       string
	DisplayName string
}

// GoogleOAuthHandlerSvcFacade drives the Google OAuth login flow.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates the CSRF state parameter for the redirect.
	GenerateStateString(ctx context.Context) (string, error)

	// GetAuthCodeURL builds the Google consent-screen URL for a state.
	GetAuthCodeURL(state string) string

	// ExchangeCodeForIdentity swaps the callback code for tokens and verifies
	// the ID token, returning the external identity.
	ExchangeCodeForIdentity(ctx context.Context, code string) (*GoogleOAuthIdentity, error)
}
