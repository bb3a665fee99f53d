package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/ports/providers"
	portsrepo "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/repositories"
	portssvc "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/services"
	"github.com/kakeibo-app/kakeibo-backend/internal/metrics"
)

// RateService produces the day's USD-based rate table. It consults the
// persisted per-day cache first, fetches from the external provider on a
// miss, and degrades to the fixed fallback table when both are unavailable.
type RateService struct {
	BaseService
	rateRepo portsrepo.RateRepositoryFacade
	provider providers.RateProvider
	metrics  *metrics.Metrics
}

// NewRateService creates a new RateService. metrics may be nil.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade, provider providers.RateProvider, m *metrics.Metrics) *RateService {
	return &RateService{
		rateRepo: rateRepo,
		provider: provider,
		metrics:  m,
	}
}

var _ portssvc.RateSvcFacade = (*RateService)(nil)

// GetRates returns the rate table for the given calendar date. It never
// returns an error: a cache-read failure counts as a miss, a provider failure
// degrades to the fallback table, and a cache-write failure is logged but
// does not discard the freshly fetched rates.
func (s *RateService) GetRates(ctx context.Context, today time.Time) domain.RateTable {
	date := domain.RateDay(today)

	cached, err := s.rateRepo.FindRatesForDate(ctx, domain.BaseCurrency, date)
	if err != nil {
		// Treat an unreadable cache as a miss and keep going.
		s.LogWarn(ctx, "Failed to read rate cache, treating as miss",
			slog.String("date", date.Format(domain.RateDateFormat)),
			slog.String("error", err.Error()))
		cached = nil
	}

	if len(cached) > 0 {
		if s.metrics != nil {
			s.metrics.RateCacheHitsTotal.Inc()
		}
		return s.tableFromCache(cached)
	}

	fetched, err := s.fetchAndCache(ctx, date)
	if err != nil {
		s.LogWarn(ctx, "Rate provider unavailable, using fallback rates",
			slog.String("date", date.Format(domain.RateDateFormat)),
			slog.String("error", err.Error()))
		if s.metrics != nil {
			s.metrics.RateFallbacksTotal.Inc()
		}
		return domain.FallbackRateTable()
	}

	return fetched
}

// tableFromCache merges cached records over the fallback table, so a
// partially populated cache day still yields a complete table. USD stays
// pinned at 1 regardless of what was stored.
func (s *RateService) tableFromCache(cached []domain.CachedRate) domain.RateTable {
	table := domain.FallbackRateTable()
	for _, rec := range cached {
		if rec.TargetCurrency == domain.BaseCurrency {
			continue
		}
		if !domain.IsSupportedCurrency(string(rec.TargetCurrency)) {
			continue
		}
		if rec.Rate.Sign() <= 0 {
			continue
		}
		table[rec.TargetCurrency] = rec.Rate
	}
	return table
}

// fetchAndCache pulls the latest table from the provider and writes the
// supported currencies through to the cache. A write failure is non-fatal:
// the fetched rates are still returned for this request.
func (s *RateService) fetchAndCache(ctx context.Context, date time.Time) (domain.RateTable, error) {
	if s.metrics != nil {
		s.metrics.RateFetchesTotal.Inc()
	}

	providerRates, err := s.provider.FetchLatestRates(ctx, domain.BaseCurrency)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RateFetchFailuresTotal.Inc()
		}
		return nil, err
	}

	table := domain.FallbackRateTable()
	var toCache []domain.CachedRate
	now := time.Now().UTC()
	for _, currency := range domain.SupportedCurrencies {
		if currency == domain.BaseCurrency {
			continue
		}
		rate, ok := providerRates[currency]
		if !ok || rate.Sign() <= 0 {
			s.LogWarn(ctx, "Provider response missing usable rate, keeping fallback value",
				slog.String("currency", string(currency)))
			continue
		}
		table[currency] = rate
		toCache = append(toCache, domain.CachedRate{
			BaseCurrency:   domain.BaseCurrency,
			TargetCurrency: currency,
			Rate:           rate,
			Date:           date,
			CreatedAt:      now,
		})
	}

	if len(toCache) > 0 {
		if err := s.rateRepo.UpsertRates(ctx, toCache); err != nil {
			// Caching is best-effort: serve the fetched rates regardless.
			s.LogWarn(ctx, "Failed to cache fetched rates",
				slog.String("date", date.Format(domain.RateDateFormat)),
				slog.String("error", err.Error()))
		}
	}

	return table, nil
}
