package repositories

import (
	"context"
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindUserByProvider looks up a user by external identity provider subject.
	FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error
	// UpdateRefreshToken stores the hash and expiry of the user's current
	// refresh token; empty hash with nil expiry clears it.
	UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiry *time.Time) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
