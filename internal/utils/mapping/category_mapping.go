package mapping

import (
	"database/sql"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	"github.com/kakeibo-app/kakeibo-backend/internal/models"
)

// ToDomainCategory converts a model category row to its domain form.
func ToDomainCategory(m models.Category) domain.Category {
	c := domain.Category{
		CategoryID: m.CategoryID,
		Name:       m.Name,
		Type:       domain.TransactionType(m.Type),
		Icon:       m.Icon,
		Color:      m.Color,
		IsSystem:   m.IsSystem,
		CreatedAt:  m.CreatedAt,
	}
	if m.UserID.Valid {
		c.UserID = m.UserID.String
	}
	return c
}

// ToModelCategory converts a domain category to its model form.
func ToModelCategory(d domain.Category) models.Category {
	m := models.Category{
		CategoryID: d.CategoryID,
		Name:       d.Name,
		Type:       string(d.Type),
		Icon:       d.Icon,
		Color:      d.Color,
		IsSystem:   d.IsSystem,
		CreatedAt:  d.CreatedAt,
	}
	if d.UserID != "" {
		m.UserID = sql.NullString{String: d.UserID, Valid: true}
	}
	return m
}

// ToDomainCategorySlice converts model categories to domain form.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	out := make([]domain.Category, len(ms))
	for i, m := range ms {
		out[i] = ToDomainCategory(m)
	}
	return out
}
