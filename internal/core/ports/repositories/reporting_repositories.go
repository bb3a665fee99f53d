package repositories

import (
	"context"
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
)

// ReportingRepository provides aggregated transaction sums for dashboards.
// Sums stay split by recorded currency; display conversion happens in the
// service layer against a single rate-table snapshot.
type ReportingRepository interface {
	// GetTypeSums returns per-type, per-currency totals for userID within [from, to].
	GetTypeSums(ctx context.Context, userID string, from, to time.Time) ([]domain.TypeSum, error)

	// GetCategorySums returns per-category, per-currency totals for userID
	// within [from, to], restricted to one transaction type.
	GetCategorySums(ctx context.Context, userID string, from, to time.Time, txnType domain.TransactionType) ([]domain.CategorySum, error)

	// GetMonthlySums returns per-month, per-type, per-currency totals for a
	// calendar year.
	GetMonthlySums(ctx context.Context, userID string, year int) ([]domain.MonthlySum, error)
}
