package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	portsrepo "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/repositories"
	portssvc "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/services"
	"github.com/kakeibo-app/kakeibo-backend/internal/dto"
)

const defaultCategoryColor = "#9E9E9E"

// CategoryService provides business logic for transaction categories.
type CategoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*CategoryService)(nil)

// ListCategories returns system categories plus the user's own.
func (s *CategoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx, userID)
}

// GetCategoryByID returns one category visible to the user.
func (s *CategoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
}

// CreateCategory records a new user-owned category.
func (s *CategoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	color := req.Color
	if color == "" {
		color = defaultCategoryColor
	}

	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Type:       domain.TransactionType(req.Type),
		Icon:       req.Icon,
		Color:      color,
		IsSystem:   false,
		UserID:     userID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category")
		return nil, err
	}

	s.LogInfo(ctx, "Category created", "category_id", category.CategoryID)
	return &category, nil
}
