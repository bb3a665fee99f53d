package repositories

import (
	"context"
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
)

// RateReader defines read operations for cached exchange-rate records.
type RateReader interface {
	// FindRatesForDate retrieves every cached record for the given base
	// currency and calendar date.
	FindRatesForDate(ctx context.Context, base domain.Currency, date time.Time) ([]domain.CachedRate, error)
}

// RateWriter defines write operations for cached exchange-rate records.
type RateWriter interface {
	// UpsertRates persists records with replace-on-conflict semantics keyed by
	// (base_currency, target_currency, date).
	UpsertRates(ctx context.Context, rates []domain.CachedRate) error
}

// RateRepositoryFacade combines all rate-cache repository interfaces.
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
