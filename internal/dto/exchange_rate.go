package dto

import (
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRatesResponse mirrors the public exchange-rates endpoint:
// the base currency, its rate table, and the calendar date it applies to.
type ExchangeRatesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
	Date  string                     `json:"date"`
}

// ToExchangeRatesResponse converts a RateTable snapshot for a given day.
func ToExchangeRatesResponse(rates domain.RateTable, day time.Time) ExchangeRatesResponse {
	out := make(map[string]decimal.Decimal, len(rates))
	for currency, rate := range rates {
		out[string(currency)] = rate
	}
	return ExchangeRatesResponse{
		Base:  string(domain.BaseCurrency),
		Rates: out,
		Date:  day.Format(domain.RateDateFormat),
	}
}

// ConvertParams captures the query parameters of the conversion endpoint.
type ConvertParams struct {
	Amount decimal.Decimal `form:"amount" binding:"required"`
	From   string          `form:"from" binding:"required,currency"`
	To     string          `form:"to" binding:"required,currency"`
}

// ConvertResponse is the converted amount alongside the inputs that produced it.
type ConvertResponse struct {
	Amount          decimal.Decimal `json:"amount"`
	From            string          `json:"from"`
	To              string          `json:"to"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Date            string          `json:"date"`
}
