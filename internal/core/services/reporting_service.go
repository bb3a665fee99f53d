package services

import (
	"context"
	"sort"
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	portsrepo "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/repositories"
	portssvc "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ReportingService aggregates a user's transactions into dashboard figures.
// Repository sums arrive split by recorded currency; every operation takes a
// single rate-table snapshot up front so all conversions within one response
// are mutually consistent.
type ReportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	rateService   portssvc.RateSvcFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, rateService portssvc.RateSvcFacade) *ReportingService {
	return &ReportingService{
		reportingRepo: reportingRepo,
		rateService:   rateService,
	}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// convertSum converts one per-currency total into the display currency. An
// unknown recorded currency contributes zero rather than failing the whole
// report; it is logged for investigation.
func (s *ReportingService) convertSum(ctx context.Context, amount decimal.Decimal, from, display domain.Currency, rates domain.RateTable) decimal.Decimal {
	converted, err := domain.Convert(amount, from, display, rates)
	if err != nil {
		s.LogWarn(ctx, "Skipping unconvertible sum in report",
			"currency", string(from), "error", err.Error())
		return decimal.Zero
	}
	return converted
}

// Summary returns total income, total expense, and balance for a period,
// converted into the display currency.
func (s *ReportingService) Summary(ctx context.Context, userID string, from, to time.Time, display domain.Currency) (*domain.PeriodSummary, error) {
	sums, err := s.reportingRepo.GetTypeSums(ctx, userID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load period sums")
		return nil, err
	}

	rates := s.rateService.GetRates(ctx, time.Now().UTC())

	summary := &domain.PeriodSummary{
		DisplayCurrency: display,
		TotalIncome:     decimal.Zero,
		TotalExpense:    decimal.Zero,
	}
	for _, sum := range sums {
		converted := s.convertSum(ctx, sum.Total, sum.Currency, display, rates)
		switch sum.Type {
		case domain.Income:
			summary.TotalIncome = summary.TotalIncome.Add(converted)
		case domain.Expense:
			summary.TotalExpense = summary.TotalExpense.Add(converted)
		}
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}

// ByCategory returns per-category totals for one transaction type within a
// period, converted into the display currency and ordered largest first.
func (s *ReportingService) ByCategory(ctx context.Context, userID string, from, to time.Time, txnType domain.TransactionType, display domain.Currency) ([]domain.CategoryTotal, error) {
	sums, err := s.reportingRepo.GetCategorySums(ctx, userID, from, to, txnType)
	if err != nil {
		s.LogError(ctx, err, "Failed to load category sums")
		return nil, err
	}

	rates := s.rateService.GetRates(ctx, time.Now().UTC())

	byCategory := make(map[string]*domain.CategoryTotal)
	var order []string
	for _, sum := range sums {
		converted := s.convertSum(ctx, sum.Total, sum.Currency, display, rates)
		total, ok := byCategory[sum.CategoryID]
		if !ok {
			total = &domain.CategoryTotal{
				CategoryID:   sum.CategoryID,
				CategoryName: sum.CategoryName,
				Color:        sum.Color,
				Total:        decimal.Zero,
			}
			byCategory[sum.CategoryID] = total
			order = append(order, sum.CategoryID)
		}
		total.Total = total.Total.Add(converted)
	}

	totals := make([]domain.CategoryTotal, 0, len(order))
	for _, id := range order {
		totals = append(totals, *byCategory[id])
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
	return totals, nil
}

// Monthly returns converted income and expense for each month of a calendar
// year. Months without transactions appear with zero values.
func (s *ReportingService) Monthly(ctx context.Context, userID string, year int, display domain.Currency) ([]domain.MonthlyTotal, error) {
	sums, err := s.reportingRepo.GetMonthlySums(ctx, userID, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to load monthly sums")
		return nil, err
	}

	rates := s.rateService.GetRates(ctx, time.Now().UTC())

	months := make([]domain.MonthlyTotal, 12)
	for i := range months {
		months[i] = domain.MonthlyTotal{
			Month:   i + 1,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}
	for _, sum := range sums {
		if sum.Month < 1 || sum.Month > 12 {
			continue
		}
		converted := s.convertSum(ctx, sum.Total, sum.Currency, display, rates)
		m := &months[sum.Month-1]
		switch sum.Type {
		case domain.Income:
			m.Income = m.Income.Add(converted)
		case domain.Expense:
			m.Expense = m.Expense.Add(converted)
		}
	}
	return months, nil
}
