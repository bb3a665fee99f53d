package models

import (
	"database/sql"
	"time"
)

// User is the database representation of a user row.
type User struct {
	UserID          string `db:"user_id"`
	Email           string `db:"email"`
	DisplayName     string `db:"display_name"`
	DefaultCurrency string `db:"default_currency"`
	AuthProvider    string `db:"auth_provider"`
	ProviderUserID  sql.NullString `db:"provider_user_id"`
	PasswordHash    sql.NullString `db:"password_hash"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
