package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores one cached conversion rate from the base currency to a
// target currency for a calendar date. Uniquely keyed by
// (base_currency, target_currency, date); same-day writes replace.
type ExchangeRate struct {
	BaseCurrency   string          `db:"base_currency"`
	TargetCurrency string          `db:"target_currency"`
	Rate           decimal.Decimal `db:"rate"`
	Date           time.Time       `db:"date"`
	CreatedAt      time.Time       `db:"created_at"`
}
