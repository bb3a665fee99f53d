package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database representation of a transaction row.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	CurrencyCode  string          `db:"currency_code"`
	CategoryID    string          `db:"category_id"`
	Description   string          `db:"description"`
	Date          time.Time       `db:"date"`
	AuditFields
}
