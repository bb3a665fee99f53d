package repositories

import (
	"context"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
)

// CategoryReader defines read operations for category data.
type CategoryReader interface {
	// FindCategoryByID retrieves a category visible to userID (system or own).
	FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)

	// ListCategories retrieves system categories plus userID's own, ordered by
	// type then name.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) error
}

// CategoryRepositoryFacade combines all category repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
