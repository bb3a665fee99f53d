package services

import (
	"context"
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
)

// RateSvcFacade produces the day's rate table.
type RateSvcFacade interface {
	// GetRates returns the rate table for the given calendar date, consulting
	// the persisted cache before the external provider. It deliberately has no
	// error return: every failure path degrades to the fixed fallback table,
	// so callers always receive something usable. The date is injected rather
	// than read from the wall clock to keep the operation testable.
	GetRates(ctx context.Context, today time.Time) domain.RateTable
}
