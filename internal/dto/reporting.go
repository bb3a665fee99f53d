package dto

import (
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
)

// SummaryParams bounds the dashboard summary period. DisplayCurrency falls
// back to the user's preference when empty.
type SummaryParams struct {
	From            string `form:"from" binding:"required,datetime=2006-01-02"`
	To              string `form:"to" binding:"required,datetime=2006-01-02"`
	DisplayCurrency string `form:"displayCurrency" binding:"omitempty,currency"`
}

// ByCategoryParams selects the category-breakdown period and transaction type.
type ByCategoryParams struct {
	From            string `form:"from" binding:"required,datetime=2006-01-02"`
	To              string `form:"to" binding:"required,datetime=2006-01-02"`
	Type            string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	DisplayCurrency string `form:"displayCurrency" binding:"omitempty,currency"`
}

// MonthlyParams selects the calendar year for the monthly chart.
type MonthlyParams struct {
	Year            int    `form:"year" binding:"required,min=2000,max=2100"`
	DisplayCurrency string `form:"displayCurrency" binding:"omitempty,currency"`
}

// SummaryResponse is the dashboard headline in the display currency.
type SummaryResponse struct {
	DisplayCurrency string `json:"displayCurrency"`
	TotalIncome     string `json:"totalIncome"`
	TotalExpense    string `json:"totalExpense"`
	Balance         string `json:"balance"`
}

// ToSummaryResponse converts a domain.PeriodSummary to its DTO form. Amounts
// are serialized as fixed two-decimal strings so chart clients never see
// floating representations.
func ToSummaryResponse(summary *domain.PeriodSummary) SummaryResponse {
	return SummaryResponse{
		DisplayCurrency: string(summary.DisplayCurrency),
		TotalIncome:     summary.TotalIncome.StringFixed(2),
		TotalExpense:    summary.TotalExpense.StringFixed(2),
		Balance:         summary.Balance.StringFixed(2),
	}
}

// CategoryTotalResponse is one slice of the category breakdown.
type CategoryTotalResponse struct {
	CategoryID   string `json:"categoryID"`
	CategoryName string `json:"categoryName"`
	Color        string `json:"color"`
	Total        string `json:"total"`
}

// ToListCategoryTotalResponse converts category totals to their DTO form.
func ToListCategoryTotalResponse(totals []domain.CategoryTotal) []CategoryTotalResponse {
	responses := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		responses[i] = CategoryTotalResponse{
			CategoryID:   t.CategoryID,
			CategoryName: t.CategoryName,
			Color:        t.Color,
			Total:        t.Total.StringFixed(2),
		}
	}
	return responses
}

// MonthlyTotalResponse is one bar of the monthly chart.
type MonthlyTotalResponse struct {
	Month   int    `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// ToListMonthlyTotalResponse converts monthly totals to their DTO form.
func ToListMonthlyTotalResponse(totals []domain.MonthlyTotal) []MonthlyTotalResponse {
	responses := make([]MonthlyTotalResponse, len(totals))
	for i, t := range totals {
		responses[i] = MonthlyTotalResponse{
			Month:   t.Month,
			Income:  t.Income.StringFixed(2),
			Expense: t.Expense.StringFixed(2),
		}
	}
	return responses
}
