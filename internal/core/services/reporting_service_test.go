package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetTypeSums(ctx context.Context, userID string, from, to time.Time) ([]domain.TypeSum, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TypeSum), args.Error(1)
}

func (m *MockReportingRepository) GetCategorySums(ctx context.Context, userID string, from, to time.Time, txnType domain.TransactionType) ([]domain.CategorySum, error) {
	args := m.Called(ctx, userID, from, to, txnType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySum), args.Error(1)
}

func (m *MockReportingRepository) GetMonthlySums(ctx context.Context, userID string, year int) ([]domain.MonthlySum, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlySum), args.Error(1)
}

// stubRateService returns a fixed table regardless of date.
type stubRateService struct {
	table domain.RateTable
}

func (s *stubRateService) GetRates(ctx context.Context, today time.Time) domain.RateTable {
	return s.table
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  *services.ReportingService
	userID   string
	from     time.Time
	to       time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	// JPY at a round 100 per USD keeps expected values easy to read.
	rates := domain.RateTable{
		domain.USD: decimal.NewFromInt(1),
		domain.JPY: decimal.NewFromInt(100),
		domain.EUR: decimal.RequireFromString("0.5"),
	}
	suite.service = services.NewReportingService(suite.mockRepo, &stubRateService{table: rates})
	suite.userID = uuid.NewString()
	suite.from = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) TestSummary_ConvertsMixedCurrencies() {
	sums := []domain.TypeSum{
		{Type: domain.Income, Currency: domain.USD, Total: decimal.NewFromInt(1000)},
		{Type: domain.Income, Currency: domain.JPY, Total: decimal.NewFromInt(50000)}, // 500 USD
		{Type: domain.Expense, Currency: domain.EUR, Total: decimal.NewFromInt(100)}, // 200 USD
	}
	suite.mockRepo.On("GetTypeSums", mock.Anything, suite.userID, suite.from, suite.to).Return(sums, nil).Once()

	summary, err := suite.service.Summary(context.Background(), suite.userID, suite.from, suite.to, domain.USD)

	suite.NoError(err)
	suite.Equal("1500.00", summary.TotalIncome.StringFixed(2))
	suite.Equal("200.00", summary.TotalExpense.StringFixed(2))
	suite.Equal("1300.00", summary.Balance.StringFixed(2))
	suite.Equal(domain.USD, summary.DisplayCurrency)
}

func (suite *ReportingServiceTestSuite) TestSummary_EmptyPeriod() {
	suite.mockRepo.On("GetTypeSums", mock.Anything, suite.userID, suite.from, suite.to).Return([]domain.TypeSum{}, nil).Once()

	summary, err := suite.service.Summary(context.Background(), suite.userID, suite.from, suite.to, domain.JPY)

	suite.NoError(err)
	suite.True(summary.TotalIncome.IsZero())
	suite.True(summary.TotalExpense.IsZero())
	suite.True(summary.Balance.IsZero())
}

func (suite *ReportingServiceTestSuite) TestSummary_UnknownCurrencyContributesZero() {
	sums := []domain.TypeSum{
		{Type: domain.Income, Currency: domain.USD, Total: decimal.NewFromInt(100)},
		{Type: domain.Income, Currency: "XXX", Total: decimal.NewFromInt(9999)},
	}
	suite.mockRepo.On("GetTypeSums", mock.Anything, suite.userID, suite.from, suite.to).Return(sums, nil).Once()

	summary, err := suite.service.Summary(context.Background(), suite.userID, suite.from, suite.to, domain.USD)

	suite.NoError(err)
	suite.Equal("100.00", summary.TotalIncome.StringFixed(2))
}

func (suite *ReportingServiceTestSuite) TestByCategory_MergesCurrenciesAndSorts() {
	foodID := uuid.NewString()
	rentID := uuid.NewString()
	sums := []domain.CategorySum{
		{CategoryID: foodID, CategoryName: "Food", Color: "#F44336", Currency: domain.USD, Total: decimal.NewFromInt(50)},
		{CategoryID: foodID, CategoryName: "Food", Color: "#F44336", Currency: domain.JPY, Total: decimal.NewFromInt(5000)}, // +50 USD
		{CategoryID: rentID, CategoryName: "Rent", Color: "#3F51B5", Currency: domain.USD, Total: decimal.NewFromInt(900)},
	}
	suite.mockRepo.On("GetCategorySums", mock.Anything, suite.userID, suite.from, suite.to, domain.Expense).Return(sums, nil).Once()

	totals, err := suite.service.ByCategory(context.Background(), suite.userID, suite.from, suite.to, domain.Expense, domain.USD)

	suite.NoError(err)
	suite.Require().Len(totals, 2)
	suite.Equal("Rent", totals[0].CategoryName)
	suite.Equal("900.00", totals[0].Total.StringFixed(2))
	suite.Equal("Food", totals[1].CategoryName)
	suite.Equal("100.00", totals[1].Total.StringFixed(2))
}

func (suite *ReportingServiceTestSuite) TestMonthly_FillsAllTwelveMonths() {
	sums := []domain.MonthlySum{
		{Month: 3, Type: domain.Income, Currency: domain.USD, Total: decimal.NewFromInt(1000)},
		{Month: 3, Type: domain.Expense, Currency: domain.JPY, Total: decimal.NewFromInt(30000)}, // 300 USD
		{Month: 11, Type: domain.Expense, Currency: domain.USD, Total: decimal.NewFromInt(75)},
	}
	suite.mockRepo.On("GetMonthlySums", mock.Anything, suite.userID, 2025).Return(sums, nil).Once()

	months, err := suite.service.Monthly(context.Background(), suite.userID, 2025, domain.USD)

	suite.NoError(err)
	suite.Require().Len(months, 12)
	suite.Equal(1, months[0].Month)
	suite.True(months[0].Income.IsZero())
	suite.Equal("1000.00", months[2].Income.StringFixed(2))
	suite.Equal("300.00", months[2].Expense.StringFixed(2))
	suite.Equal("75.00", months[10].Expense.StringFixed(2))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
