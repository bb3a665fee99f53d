package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kakeibo-app/kakeibo-backend/internal/apperrors"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	portsrepo "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/repositories"
	portssvc "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/services"
	"github.com/kakeibo-app/kakeibo-backend/internal/dto"
	"github.com/shopspring/decimal"
)

// TransactionService provides business logic for transaction entries.
type TransactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade) *TransactionService {
	return &TransactionService{
		txnRepo:      txnRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// validateAmount enforces the positive, bounded amount rule shared by create
// and update.
func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if amount.GreaterThan(dto.MaxTransactionAmount) {
		return fmt.Errorf("%w: amount exceeds the maximum of %s", apperrors.ErrValidation, dto.MaxTransactionAmount)
	}
	return nil
}

// resolveCategory checks that the category exists, is visible to the user,
// and matches the transaction type.
func (s *TransactionService) resolveCategory(ctx context.Context, userID, categoryID string, txnType domain.TransactionType) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category '%s' not found", apperrors.ErrValidation, categoryID)
		}
		return nil, fmt.Errorf("failed to validate category '%s': %w", categoryID, err)
	}
	if category.Type != txnType {
		return nil, fmt.Errorf("%w: category '%s' is for %s transactions", apperrors.ErrValidation, category.Name, category.Type)
	}
	return category, nil
}

// CreateTransaction validates and records a new transaction for userID.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}

	txnType := domain.TransactionType(req.Type)
	category, err := s.resolveCategory(ctx, userID, req.CategoryID, txnType)
	if err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation(domain.RateDateFormat, req.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date '%s'", apperrors.ErrValidation, req.Date)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          txnType,
		Amount:        req.Amount,
		Currency:      currency,
		CategoryID:    req.CategoryID,
		Description:   req.Description,
		Date:          date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction")
		return nil, err
	}

	txn.Category = category
	s.LogInfo(ctx, "Transaction created", "transaction_id", txn.TransactionID)
	return &txn, nil
}

// GetTransactionByID retrieves one of the user's transactions.
func (s *TransactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
}

// ListTransactions returns a filtered page of the user's transactions.
func (s *TransactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter := portsrepo.TransactionFilter{
		Limit:     params.Limit,
		NextToken: params.NextToken,
	}

	if params.From != "" {
		from, err := time.ParseInLocation(domain.RateDateFormat, params.From, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid 'from' date", apperrors.ErrValidation)
		}
		filter.From = &from
	}
	if params.To != "" {
		to, err := time.ParseInLocation(domain.RateDateFormat, params.To, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid 'to' date", apperrors.ErrValidation)
		}
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, fmt.Errorf("%w: 'to' date is before 'from' date", apperrors.ErrValidation)
	}
	if params.Type != "" {
		txnType := domain.TransactionType(params.Type)
		filter.Type = &txnType
	}
	if params.CategoryID != "" {
		filter.CategoryID = &params.CategoryID
	}
	if params.Currency != "" {
		currency, err := domain.ParseCurrency(params.Currency)
		if err != nil {
			return nil, err
		}
		filter.Currency = &currency
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}

	resp := dto.ToListTransactionsResponse(txns, nextToken)
	return &resp, nil
}

// UpdateTransaction applies partial changes to one of the user's transactions.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		txn.Type = domain.TransactionType(*req.Type)
	}
	if req.Amount != nil {
		if err := validateAmount(*req.Amount); err != nil {
			return nil, err
		}
		txn.Amount = *req.Amount
	}
	if req.Currency != nil {
		currency, err := domain.ParseCurrency(*req.Currency)
		if err != nil {
			return nil, err
		}
		txn.Currency = currency
	}
	if req.CategoryID != nil {
		txn.CategoryID = *req.CategoryID
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Date != nil {
		date, err := time.ParseInLocation(domain.RateDateFormat, *req.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date '%s'", apperrors.ErrValidation, *req.Date)
		}
		txn.Date = date
	}

	// Re-check the category/type pairing after applying changes, since either
	// side may have moved.
	category, err := s.resolveCategory(ctx, userID, txn.CategoryID, txn.Type)
	if err != nil {
		return nil, err
	}

	txn.LastUpdatedAt = time.Now().UTC()
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", "transaction_id", transactionID)
		return nil, err
	}

	txn.Category = category
	return txn, nil
}

// DeleteTransaction removes one of the user's transactions.
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", "transaction_id", transactionID)
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", "transaction_id", transactionID)
	return nil
}
