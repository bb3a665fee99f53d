package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money came in or went out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction is a single income or expense entry recorded by a user.
// Amount is always positive; the type carries the direction.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // FK -> User.userID
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`   // Positive; precise decimal type
	Currency      Currency        `json:"currency"` // Member of the supported set
	CategoryID    string          `json:"categoryID"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"` // calendar date of the transaction
	AuditFields
	Category *Category `json:"category,omitempty"` // Populated on reads that join categories
}
