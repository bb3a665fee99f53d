package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Currency is a supported currency code. The set is closed: adding a currency
// is a code change, not a runtime operation.
type Currency string

const (
	USD Currency = "USD"
	JPY Currency = "JPY"
	EUR Currency = "EUR"
)

// BaseCurrency is the pivot currency all stored rates are expressed relative to.
const BaseCurrency = USD

// SupportedCurrencies lists every currency the application accepts, in display order.
var SupportedCurrencies = []Currency{USD, JPY, EUR}

// ParseCurrency validates a currency code against the supported set.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(code))
	for _, supported := range SupportedCurrencies {
		if c == supported {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrencyCode, code)
}

// IsSupportedCurrency reports whether code is in the supported set.
func IsSupportedCurrency(code string) bool {
	_, err := ParseCurrency(code)
	return err == nil
}

// RateTable maps a currency to how many of its units equal 1 unit of the base
// currency (USD). The USD entry is always exactly 1; every other entry is a
// strictly positive number.
type RateTable map[Currency]decimal.Decimal

// Rate returns the table entry for c.
func (t RateTable) Rate(c Currency) (decimal.Decimal, bool) {
	r, ok := t[c]
	return r, ok
}

// Fallback rates used when neither the cache nor the external provider can
// supply today's table. Tunable constants, not control flow.
var (
	fallbackJPYRate = decimal.NewFromInt(160)
	fallbackEURRate = decimal.RequireFromString("0.91")
)

// FallbackRateTable returns a fresh copy of the fixed fallback table
// {USD: 1, JPY: 160, EUR: 0.91}. Callers may overlay cached entries onto it.
func FallbackRateTable() RateTable {
	return RateTable{
		USD: decimal.NewFromInt(1),
		JPY: fallbackJPYRate,
		EUR: fallbackEURRate,
	}
}

// CachedRate is one persisted exchange-rate record: the rate from the base
// currency to a target currency on a given calendar date. At most one record
// exists per (base, target, date); the store replaces same-day records.
type CachedRate struct {
	BaseCurrency   Currency        `json:"baseCurrency"`
	TargetCurrency Currency        `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	Date           time.Time       `json:"date"` // calendar date, midnight UTC
	CreatedAt      time.Time       `json:"createdAt"`
}

// RateDateFormat is the ISO calendar-date form used for cache keys and API responses.
const RateDateFormat = "2006-01-02"

// RateDay truncates t to the calendar date the rate cache is keyed by.
func RateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
