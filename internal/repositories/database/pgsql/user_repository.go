package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kakeibo-app/kakeibo-backend/internal/apperrors"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	portsrepo "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/repositories"
	"github.com/kakeibo-app/kakeibo-backend/internal/models"
	"github.com/kakeibo-app/kakeibo-backend/internal/utils/mapping"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaches.
const uniqueViolation = "23505"

// PgxUserRepository implements the user repository using pgxpool.
type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `
	user_id, email, display_name, default_currency, auth_provider, provider_user_id,
	password_hash, created_at, created_by, last_updated_at, last_updated_by, deleted_at,
	refresh_token_hash, refresh_token_expiry_time`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Email,
		&m.DisplayName,
		&m.DefaultCurrency,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveUser inserts a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (
			user_id, email, display_name, default_currency, auth_provider, provider_user_id,
			password_hash, created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Email, m.DisplayName, m.DefaultCurrency, m.AuthProvider, m.ProviderUserID,
		m.PasswordHash, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: email %s already registered", apperrors.ErrDuplicate, user.Email)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// FindUserByID retrieves a user by ID, excluding soft-deleted rows.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

// FindUserByEmail retrieves a user by email, excluding soft-deleted rows.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

// FindUserByProvider retrieves a user by external identity provider subject.
func (r *PgxUserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth_provider = $1 AND provider_user_id = $2 AND deleted_at IS NULL;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, string(provider), providerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by provider: %w", err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

// UpdateUser updates mutable profile fields.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users SET
			display_name = $1,
			default_currency = $2,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE user_id = $5 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.DisplayName, m.DefaultCurrency, m.LastUpdatedAt, m.LastUpdatedBy, m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRefreshToken stores the hash and expiry of the user's refresh token.
func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiry *time.Time) error {
	query := `
		UPDATE users SET
			refresh_token_hash = NULLIF($1, ''),
			refresh_token_expiry_time = $2,
			last_updated_at = NOW()
		WHERE user_id = $3 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, tokenHash, expiry, userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
