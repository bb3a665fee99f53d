package services

import (
	"context"
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
)

// ReportingSvcFacade aggregates a user's transactions into dashboard figures,
// converted into a single display currency against one rate-table snapshot.
type ReportingSvcFacade interface {
	Summary(ctx context.Context, userID string, from, to time.Time, display domain.Currency) (*domain.PeriodSummary, error)
	ByCategory(ctx context.Context, userID string, from, to time.Time, txnType domain.TransactionType, display domain.Currency) ([]domain.CategoryTotal, error)
	Monthly(ctx context.Context, userID string, year int, display domain.Currency) ([]domain.MonthlyTotal, error)
}
