package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	portsrepo "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/repositories"
)

// PgxReportingRepository implements dashboard aggregation queries using pgxpool.
type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetTypeSums returns per-type, per-currency totals for userID within [from, to].
func (r *PgxReportingRepository) GetTypeSums(ctx context.Context, userID string, from, to time.Time) ([]domain.TypeSum, error) {
	query := `
		SELECT type, currency_code, SUM(amount)
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		GROUP BY type, currency_code;
	`
	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query type sums: %w", err)
	}
	sums, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TypeSum, error) {
		var s domain.TypeSum
		err := row.Scan(&s.Type, &s.Currency, &s.Total)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect type sums: %w", err)
	}
	return sums, nil
}

// GetCategorySums returns per-category, per-currency totals for one
// transaction type within [from, to].
func (r *PgxReportingRepository) GetCategorySums(ctx context.Context, userID string, from, to time.Time, txnType domain.TransactionType) ([]domain.CategorySum, error) {
	query := `
		SELECT c.category_id, c.name, c.color, t.currency_code, SUM(t.amount)
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE t.user_id = $1 AND t.date >= $2 AND t.date <= $3 AND t.type = $4
		GROUP BY c.category_id, c.name, c.color, t.currency_code;
	`
	rows, err := r.Pool.Query(ctx, query, userID, from, to, string(txnType))
	if err != nil {
		return nil, fmt.Errorf("failed to query category sums: %w", err)
	}
	sums, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CategorySum, error) {
		var s domain.CategorySum
		err := row.Scan(&s.CategoryID, &s.CategoryName, &s.Color, &s.Currency, &s.Total)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect category sums: %w", err)
	}
	return sums, nil
}

// GetMonthlySums returns per-month, per-type, per-currency totals for a
// calendar year.
func (r *PgxReportingRepository) GetMonthlySums(ctx context.Context, userID string, year int) ([]domain.MonthlySum, error) {
	query := `
		SELECT EXTRACT(MONTH FROM date)::int, type, currency_code, SUM(amount)
		FROM transactions
		WHERE user_id = $1 AND EXTRACT(YEAR FROM date)::int = $2
		GROUP BY 1, type, currency_code
		ORDER BY 1;
	`
	rows, err := r.Pool.Query(ctx, query, userID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly sums: %w", err)
	}
	sums, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MonthlySum, error) {
		var s domain.MonthlySum
		err := row.Scan(&s.Month, &s.Type, &s.Currency, &s.Total)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect monthly sums: %w", err)
	}
	return sums, nil
}
