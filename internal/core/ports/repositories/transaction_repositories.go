package repositories

import (
	"context"
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
)

// TransactionFilter narrows a transaction listing. Nil fields are ignored.
type TransactionFilter struct {
	From       *time.Time
	To         *time.Time
	Type       *domain.TransactionType
	CategoryID *string
	Currency   *domain.Currency
	Limit      int
	NextToken  string
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves one transaction owned by userID.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions for userID matching the filter,
	// ordered by date desc then creation time desc, with the category joined.
	// Returns a token for the next page, empty when exhausted.
	ListTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]domain.Transaction, string, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	// DeleteTransaction removes a transaction owned by userID; ErrNotFound when
	// no such row exists.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
