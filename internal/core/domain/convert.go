package domain

import (
	"fmt"

	"github.com/kakeibo-app/kakeibo-backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Convert converts amount from one currency to another via the USD pivot,
// using a single RateTable snapshot. It is a pure function: no I/O, no hidden
// state, safe to call concurrently.
//
// Rates are "units of currency per 1 USD", so converting into USD divides and
// converting out of USD multiplies. Results are rounded to 2 decimal places,
// half away from zero. Same-currency conversion is an exact passthrough with
// no rounding applied.
func Convert(amount decimal.Decimal, from, to Currency, rates RateTable) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	usdAmount := amount
	if from != USD {
		rate, ok := rates[from]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: no rate for %q", apperrors.ErrInvalidCurrencyCode, from)
		}
		if !rate.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: rate for %q must be positive, got %s", apperrors.ErrValidation, from, rate)
		}
		usdAmount = amount.Div(rate)
	}

	result := usdAmount
	if to != USD {
		rate, ok := rates[to]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: no rate for %q", apperrors.ErrInvalidCurrencyCode, to)
		}
		if !rate.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: rate for %q must be positive, got %s", apperrors.ErrValidation, to, rate)
		}
		result = usdAmount.Mul(rate)
	}

	return result.Round(2), nil
}
