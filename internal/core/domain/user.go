package domain

import "time"

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a user of the application in the domain.
type User struct {
	UserID          string       `json:"userID"` // Primary Key (UUID)
	Email           string       `json:"email"`
	DisplayName     string       `json:"displayName"`
	DefaultCurrency Currency     `json:"defaultCurrency"` // Display currency for dashboards
	AuthProvider    AuthProvider `json:"-"`
	ProviderUserID  string       `json:"-"` // Subject from the external identity provider
	PasswordHash    string       `json:"-"` // Empty for OAuth-only users
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete

	// Refresh token state
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}
