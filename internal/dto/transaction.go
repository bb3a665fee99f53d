package dto

import (
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaxTransactionAmount caps a single entry; anything larger is a typo or abuse.
var MaxTransactionAmount = decimal.NewFromInt(999999999)

// CreateTransactionRequest defines the structure for recording a transaction.
// Date uses the ISO calendar-date form, matching how transactions are stored.
type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"required,currency"`
	CategoryID  string          `json:"categoryID" binding:"required,uuid"`
	Description string          `json:"description" binding:"omitempty,max=100"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
}

// UpdateTransactionRequest defines the structure for editing a transaction.
// Nil fields are left unchanged.
type UpdateTransactionRequest struct {
	Type        *string          `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Amount      *decimal.Decimal `json:"amount"`
	Currency    *string          `json:"currency" binding:"omitempty,currency"`
	CategoryID  *string          `json:"categoryID" binding:"omitempty,uuid"`
	Description *string          `json:"description" binding:"omitempty,max=100"`
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ListTransactionsParams captures the supported listing filters, bound from
// the query string.
type ListTransactionsParams struct {
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Type       string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	CategoryID string `form:"categoryID" binding:"omitempty,uuid"`
	Currency   string `form:"currency" binding:"omitempty,currency"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken  string `form:"nextToken"`
}

// TransactionResponse defines the structure for API responses containing
// transaction details.
type TransactionResponse struct {
	TransactionID string            `json:"transactionID"`
	Type          string            `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      string            `json:"currency"`
	CategoryID    string            `json:"categoryID"`
	Category      *CategoryResponse `json:"category,omitempty"`
	Description   string            `json:"description"`
	Date          string            `json:"date"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		Currency:      string(txn.Currency),
		CategoryID:    txn.CategoryID,
		Description:   txn.Description,
		Date:          txn.Date.Format(domain.RateDateFormat),
		CreatedAt:     txn.CreatedAt,
		LastUpdatedAt: txn.LastUpdatedAt,
	}
	if txn.Category != nil {
		category := ToCategoryResponse(txn.Category)
		resp.Category = &category
	}
	return resp
}

// ToListTransactionsResponse converts a page of domain transactions to the DTO form.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken string) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: responses, NextToken: nextToken}
}
