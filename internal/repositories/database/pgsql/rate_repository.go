package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	portsrepo "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/repositories"
	"github.com/kakeibo-app/kakeibo-backend/internal/models"
	"github.com/kakeibo-app/kakeibo-backend/internal/utils/mapping"
)

// PgxRateRepository implements the rate-cache repository using pgxpool.
type PgxRateRepository struct {
	BaseRepository
}

// newPgxRateRepository creates a new repository for cached exchange rates.
func newPgxRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

// FindRatesForDate retrieves every cached record for one base currency and day.
func (r *PgxRateRepository) FindRatesForDate(ctx context.Context, base domain.Currency, date time.Time) ([]domain.CachedRate, error) {
	query := `
		SELECT base_currency, target_currency, rate, date, created_at
		FROM exchange_rates
		WHERE base_currency = $1 AND date = $2
		ORDER BY target_currency;
	`
	rows, err := r.Pool.Query(ctx, query, string(base), domain.RateDay(date))
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		var rate models.ExchangeRate
		err := row.Scan(
			&rate.BaseCurrency,
			&rate.TargetCurrency,
			&rate.Rate,
			&rate.Date,
			&rate.CreatedAt,
		)
		return rate, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rates: %w", err)
	}

	domainRates := make([]domain.CachedRate, len(modelRates))
	for i, m := range modelRates {
		domainRates[i] = mapping.ToDomainCachedRate(m)
	}
	return domainRates, nil
}

// UpsertRates persists records with replace-on-conflict semantics keyed by
// (base_currency, target_currency, date).
func (r *PgxRateRepository) UpsertRates(ctx context.Context, rates []domain.CachedRate) error {
	if len(rates) == 0 {
		return nil
	}

	query := `
		INSERT INTO exchange_rates (base_currency, target_currency, rate, date, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (base_currency, target_currency, date) DO UPDATE SET
			rate = EXCLUDED.rate,
			created_at = EXCLUDED.created_at;
	`

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	for _, rate := range rates {
		m := mapping.ToModelExchangeRate(rate)
		if _, err := tx.Exec(ctx, query,
			m.BaseCurrency,
			m.TargetCurrency,
			m.Rate,
			domain.RateDay(m.Date),
			m.CreatedAt,
		); err != nil {
			_ = r.Rollback(ctx, tx)
			return fmt.Errorf("failed to upsert exchange rate %s/%s: %w", m.BaseCurrency, m.TargetCurrency, err)
		}
	}

	return r.Commit(ctx, tx)
}
