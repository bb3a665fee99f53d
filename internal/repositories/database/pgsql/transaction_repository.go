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
	"github.com/kakeibo-app/kakeibo-backend/internal/utils/pagination"
)

const defaultListLimit = 50

// PgxTransactionRepository implements the transaction repository using pgxpool.
type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (
			transaction_id, user_id, type, amount, currency_code, category_id,
			description, date, created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	if _, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.UserID, m.Type, m.Amount, m.CurrencyCode, m.CategoryID,
		m.Description, m.Date, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// UpdateTransaction updates a transaction owned by its user.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions SET
			type = $1,
			amount = $2,
			currency_code = $3,
			category_id = $4,
			description = $5,
			date = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE transaction_id = $9 AND user_id = $10;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Type, m.Amount, m.CurrencyCode, m.CategoryID, m.Description, m.Date,
		m.LastUpdatedAt, m.LastUpdatedBy, m.TransactionID, m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction owned by userID.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`,
		transactionID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const transactionSelect = `
	SELECT
		t.transaction_id, t.user_id, t.type, t.amount, t.currency_code, t.category_id,
		t.description, t.date, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by,
		c.category_id, c.name, c.type, c.icon, c.color, c.is_system, c.user_id, c.created_at
	FROM transactions t
	JOIN categories c ON t.category_id = c.category_id`

func scanTransactionWithCategory(row pgx.Row) (domain.Transaction, error) {
	var m models.Transaction
	var cm models.Category
	err := row.Scan(
		&m.TransactionID, &m.UserID, &m.Type, &m.Amount, &m.CurrencyCode, &m.CategoryID,
		&m.Description, &m.Date, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		&cm.CategoryID, &cm.Name, &cm.Type, &cm.Icon, &cm.Color, &cm.IsSystem, &cm.UserID, &cm.CreatedAt,
	)
	if err != nil {
		return domain.Transaction{}, err
	}
	txn := mapping.ToDomainTransaction(m)
	category := mapping.ToDomainCategory(cm)
	txn.Category = &category
	return txn, nil
}

// FindTransactionByID retrieves one transaction owned by userID, with its category.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := transactionSelect + ` WHERE t.transaction_id = $1 AND t.user_id = $2;`
	txn, err := scanTransactionWithCategory(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return &txn, nil
}

// ListTransactions retrieves a filtered, keyset-paginated page of transactions
// for userID, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, string, error) {
	query := transactionSelect + ` WHERE t.user_id = $1`
	args := []interface{}{userID}
	argNum := 2

	if filter.From != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", argNum)
		args = append(args, *filter.From)
		argNum++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argNum)
		args = append(args, *filter.To)
		argNum++
	}
	if filter.Type != nil {
		query += fmt.Sprintf(" AND t.type = $%d", argNum)
		args = append(args, string(*filter.Type))
		argNum++
	}
	if filter.CategoryID != nil {
		query += fmt.Sprintf(" AND t.category_id = $%d", argNum)
		args = append(args, *filter.CategoryID)
		argNum++
	}
	if filter.Currency != nil {
		query += fmt.Sprintf(" AND t.currency_code = $%d", argNum)
		args = append(args, string(*filter.Currency))
		argNum++
	}

	if filter.NextToken != "" {
		tokenDate, tokenCreatedAt, err := pagination.DecodeToken(filter.NextToken)
		if err != nil {
			return nil, "", apperrors.NewValidationError("invalid pagination token")
		}
		query += fmt.Sprintf(" AND (t.date < $%d OR (t.date = $%d AND t.created_at < $%d))", argNum, argNum, argNum+1)
		args = append(args, tokenDate, tokenCreatedAt)
		argNum += 2
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(" ORDER BY t.date DESC, t.created_at DESC LIMIT $%d", argNum)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		txn, err := scanTransactionWithCategory(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("error iterating transactions: %w", err)
	}

	nextToken := ""
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		nextToken = pagination.EncodeToken(last.Date, last.CreatedAt)
	}

	return txns, nextToken, nil
}
