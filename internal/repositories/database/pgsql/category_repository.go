package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kakeibo-app/kakeibo-backend/internal/apperrors"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	portsrepo "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/repositories"
	"github.com/kakeibo-app/kakeibo-backend/internal/models"
	"github.com/kakeibo-app/kakeibo-backend/internal/utils/mapping"
)

// PgxCategoryRepository implements the category repository using pgxpool.
type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, name, type, icon, color, is_system, user_id, created_at`

func scanCategory(row pgx.Row) (*models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID,
		&m.Name,
		&m.Type,
		&m.Icon,
		&m.Color,
		&m.IsSystem,
		&m.UserID,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveCategory inserts a new user category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		INSERT INTO categories (category_id, name, type, icon, color, is_system, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	if _, err := r.Pool.Exec(ctx, query,
		m.CategoryID, m.Name, m.Type, m.Icon, m.Color, m.IsSystem, m.UserID, m.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to save category %s: %w", category.Name, err)
	}
	return nil
}

// FindCategoryByID retrieves one category visible to userID (system or own).
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE category_id = $1 AND (is_system OR user_id = $2);
	`
	m, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	c := mapping.ToDomainCategory(*m)
	return &c, nil
}

// ListCategories retrieves system categories plus the user's own, ordered by
// type then name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE is_system OR user_id = $1
		ORDER BY type, name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	modelCategories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		m, err := scanCategory(row)
		if err != nil {
			return models.Category{}, err
		}
		return *m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}

	return mapping.ToDomainCategorySlice(modelCategories), nil
}
