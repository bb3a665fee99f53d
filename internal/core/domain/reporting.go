package domain

import (
	"github.com/shopspring/decimal"
)

// CurrencyAmount is a raw per-currency sum before display conversion.
type CurrencyAmount struct {
	Currency Currency        `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// PeriodSummary is the dashboard headline: totals for a period converted into
// a single display currency.
type PeriodSummary struct {
	DisplayCurrency Currency        `json:"displayCurrency"`
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpense    decimal.Decimal `json:"totalExpense"`
	Balance         decimal.Decimal `json:"balance"` // income minus expense
}

// CategoryTotal is one slice of the category breakdown, converted into the
// display currency.
type CategoryTotal struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Color        string          `json:"color"`
	Total        decimal.Decimal `json:"total"`
}

// MonthlyTotal is one bar of the monthly chart: converted income and expense
// for a calendar month.
type MonthlyTotal struct {
	Month   int             `json:"month"` // 1..12
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategorySum and MonthlySum are repository-level rows, still split by the
// currency the transactions were recorded in.
type CategorySum struct {
	CategoryID   string
	CategoryName string
	Color        string
	Currency     Currency
	Total        decimal.Decimal
}

type MonthlySum struct {
	Month    int
	Type     TransactionType
	Currency Currency
	Total    decimal.Decimal
}

// TypeSum is a per-type, per-currency total for a period.
type TypeSum struct {
	Type     TransactionType
	Currency Currency
	Total    decimal.Decimal
}
