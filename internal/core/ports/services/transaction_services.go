package services

import (
	"context"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	"github.com/kakeibo-app/kakeibo-backend/internal/dto"
)

// TransactionSvcFacade defines transaction CRUD as seen by the handlers.
// Every operation is scoped to the acting user; rows owned by someone else
// behave as if they do not exist.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// CategorySvcFacade defines category operations as seen by the handlers.
type CategorySvcFacade interface {
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
}
