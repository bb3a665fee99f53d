package mapping

import (
	"database/sql"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	"github.com/kakeibo-app/kakeibo-backend/internal/models"
)

// ToDomainUser converts a model user row to its domain form.
func ToDomainUser(m models.User) domain.User {
	u := domain.User{
		UserID:          m.UserID,
		Email:           m.Email,
		DisplayName:     m.DisplayName,
		DefaultCurrency: domain.Currency(m.DefaultCurrency),
		AuthProvider:    domain.AuthProvider(m.AuthProvider),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
		DeletedAt:       m.DeletedAt,
	}
	if m.ProviderUserID.Valid {
		u.ProviderUserID = m.ProviderUserID.String
	}
	if m.PasswordHash.Valid {
		u.PasswordHash = m.PasswordHash.String
	}
	if m.RefreshTokenHash.Valid {
		u.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		u.RefreshTokenExpiryTime = &t
	}
	return u
}

// ToModelUser converts a domain user to its model form.
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:          d.UserID,
		Email:           d.Email,
		DisplayName:     d.DisplayName,
		DefaultCurrency: string(d.DefaultCurrency),
		AuthProvider:    string(d.AuthProvider),
		AuditFields:     ToModelAuditFields(d.AuditFields),
		DeletedAt:       d.DeletedAt,
	}
	if d.ProviderUserID != "" {
		m.ProviderUserID = sql.NullString{String: d.ProviderUserID, Valid: true}
	}
	if d.PasswordHash != "" {
		m.PasswordHash = sql.NullString{String: d.PasswordHash, Valid: true}
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash = sql.NullString{String: d.RefreshTokenHash, Valid: true}
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return m
}
