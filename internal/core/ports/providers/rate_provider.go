package providers

import (
	"context"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateProvider is the external exchange-rate API, consumed at most once per
// cache-miss day. Implementations must honor ctx cancellation; callers treat
// any error as "provider unavailable" and fall back.
type RateProvider interface {
	// FetchLatestRates returns the full conversion table relative to base:
	// currency code -> units of that currency per 1 unit of base.
	FetchLatestRates(ctx context.Context, base domain.Currency) (map[domain.Currency]decimal.Decimal, error)
}
