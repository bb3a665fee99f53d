package services

import (
	"context"
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	"github.com/kakeibo-app/kakeibo-backend/internal/dto"
)

// UserSvcFacade defines the user-facing operations of the user service.
type UserSvcFacade interface {
	// RegisterUser creates a local-password account.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindOrCreateOAuthUser resolves an external identity to a local user,
	// creating the account on first login.
	FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email, displayName string) (*domain.User, error)

	// UpdateUser applies profile/preference changes for userID.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// StoreRefreshToken persists the hash of the user's current refresh token.
	StoreRefreshToken(ctx context.Context, userID, tokenHash string, expiry time.Time) error

	// ClearRefreshToken invalidates the stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, userID string) error
}
