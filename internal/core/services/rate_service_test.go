package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) FindRatesForDate(ctx context.Context, base domain.Currency, date time.Time) ([]domain.CachedRate, error) {
	args := m.Called(ctx, base, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CachedRate), args.Error(1)
}

func (m *MockRateRepository) UpsertRates(ctx context.Context, rates []domain.CachedRate) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchLatestRates(ctx context.Context, base domain.Currency) (map[domain.Currency]decimal.Decimal, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.Currency]decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type RateServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockRateRepository
	mockProvider *MockRateProvider
	service      *services.RateService
	today        time.Time
	day          time.Time
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRateRepository)
	suite.mockProvider = new(MockRateProvider)
	suite.service = services.NewRateService(suite.mockRepo, suite.mockProvider, nil)
	suite.today = time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)
	suite.day = domain.RateDay(suite.today)
}

func (suite *RateServiceTestSuite) mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	suite.Require().NoError(err)
	return d
}

func (suite *RateServiceTestSuite) TestGetRates_CacheHitSkipsProvider() {
	cached := []domain.CachedRate{
		{BaseCurrency: domain.USD, TargetCurrency: domain.JPY, Rate: suite.mustDecimal("145.2"), Date: suite.day},
		{BaseCurrency: domain.USD, TargetCurrency: domain.EUR, Rate: suite.mustDecimal("0.93"), Date: suite.day},
	}
	suite.mockRepo.On("FindRatesForDate", mock.Anything, domain.USD, suite.day).Return(cached, nil).Once()

	table := suite.service.GetRates(context.Background(), suite.today)

	suite.True(table[domain.USD].Equal(decimal.NewFromInt(1)))
	suite.True(table[domain.JPY].Equal(suite.mustDecimal("145.2")))
	suite.True(table[domain.EUR].Equal(suite.mustDecimal("0.93")))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchLatestRates", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestGetRates_PartialCacheMergesOverFallback() {
	// Only JPY cached; EUR comes from the fallback table.
	cached := []domain.CachedRate{
		{BaseCurrency: domain.USD, TargetCurrency: domain.JPY, Rate: suite.mustDecimal("145.2"), Date: suite.day},
	}
	suite.mockRepo.On("FindRatesForDate", mock.Anything, domain.USD, suite.day).Return(cached, nil).Once()

	table := suite.service.GetRates(context.Background(), suite.today)

	suite.True(table[domain.JPY].Equal(suite.mustDecimal("145.2")))
	suite.True(table[domain.EUR].Equal(domain.FallbackRateTable()[domain.EUR]))
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchLatestRates", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestGetRates_CacheMissFetchesAndUpserts() {
	suite.mockRepo.On("FindRatesForDate", mock.Anything, domain.USD, suite.day).Return([]domain.CachedRate{}, nil).Once()
	suite.mockProvider.On("FetchLatestRates", mock.Anything, domain.USD).Return(map[domain.Currency]decimal.Decimal{
		domain.USD: decimal.NewFromInt(1),
		domain.JPY: suite.mustDecimal("150.5"),
		domain.EUR: suite.mustDecimal("0.92"),
		"GBP":      suite.mustDecimal("0.79"), // unsupported, must not be cached
	}, nil).Once()
	suite.mockRepo.On("UpsertRates", mock.Anything, mock.MatchedBy(func(rates []domain.CachedRate) bool {
		if len(rates) != 2 {
			return false
		}
		for _, r := range rates {
			if r.BaseCurrency != domain.USD || !r.Date.Equal(suite.day) {
				return false
			}
			if r.TargetCurrency != domain.JPY && r.TargetCurrency != domain.EUR {
				return false
			}
		}
		return true
	})).Return(nil).Once()

	table := suite.service.GetRates(context.Background(), suite.today)

	suite.True(table[domain.JPY].Equal(suite.mustDecimal("150.5")))
	suite.True(table[domain.EUR].Equal(suite.mustDecimal("0.92")))
	suite.True(table[domain.USD].Equal(decimal.NewFromInt(1)))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRates_ProviderFailureFallsBack() {
	suite.mockRepo.On("FindRatesForDate", mock.Anything, domain.USD, suite.day).Return([]domain.CachedRate{}, nil).Once()
	suite.mockProvider.On("FetchLatestRates", mock.Anything, domain.USD).Return(nil, errors.New("connection refused")).Once()

	table := suite.service.GetRates(context.Background(), suite.today)

	suite.Equal(domain.FallbackRateTable(), table)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertRates", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestGetRates_CacheReadErrorTreatedAsMiss() {
	suite.mockRepo.On("FindRatesForDate", mock.Anything, domain.USD, suite.day).Return(nil, errors.New("db down")).Once()
	suite.mockProvider.On("FetchLatestRates", mock.Anything, domain.USD).Return(map[domain.Currency]decimal.Decimal{
		domain.JPY: suite.mustDecimal("151"),
		domain.EUR: suite.mustDecimal("0.9"),
	}, nil).Once()
	suite.mockRepo.On("UpsertRates", mock.Anything, mock.Anything).Return(nil).Once()

	table := suite.service.GetRates(context.Background(), suite.today)

	suite.True(table[domain.JPY].Equal(suite.mustDecimal("151")))
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRates_UpsertFailureStillReturnsFetched() {
	suite.mockRepo.On("FindRatesForDate", mock.Anything, domain.USD, suite.day).Return([]domain.CachedRate{}, nil).Once()
	suite.mockProvider.On("FetchLatestRates", mock.Anything, domain.USD).Return(map[domain.Currency]decimal.Decimal{
		domain.JPY: suite.mustDecimal("149.9"),
		domain.EUR: suite.mustDecimal("0.88"),
	}, nil).Once()
	suite.mockRepo.On("UpsertRates", mock.Anything, mock.Anything).Return(errors.New("write failed")).Once()

	table := suite.service.GetRates(context.Background(), suite.today)

	suite.True(table[domain.JPY].Equal(suite.mustDecimal("149.9")))
	suite.True(table[domain.EUR].Equal(suite.mustDecimal("0.88")))
}

func (suite *RateServiceTestSuite) TestGetRates_ProviderMissingCurrencyKeepsFallbackValue() {
	suite.mockRepo.On("FindRatesForDate", mock.Anything, domain.USD, suite.day).Return([]domain.CachedRate{}, nil).Once()
	suite.mockProvider.On("FetchLatestRates", mock.Anything, domain.USD).Return(map[domain.Currency]decimal.Decimal{
		domain.JPY: suite.mustDecimal("150"),
		// EUR absent from provider response
	}, nil).Once()
	suite.mockRepo.On("UpsertRates", mock.Anything, mock.MatchedBy(func(rates []domain.CachedRate) bool {
		return len(rates) == 1 && rates[0].TargetCurrency == domain.JPY
	})).Return(nil).Once()

	table := suite.service.GetRates(context.Background(), suite.today)

	suite.True(table[domain.JPY].Equal(suite.mustDecimal("150")))
	suite.True(table[domain.EUR].Equal(domain.FallbackRateTable()[domain.EUR]))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRates_IgnoresBogusCachedRows() {
	cached := []domain.CachedRate{
		{BaseCurrency: domain.USD, TargetCurrency: domain.USD, Rate: suite.mustDecimal("2"), Date: suite.day},
		{BaseCurrency: domain.USD, TargetCurrency: "XXX", Rate: suite.mustDecimal("5"), Date: suite.day},
		{BaseCurrency: domain.USD, TargetCurrency: domain.JPY, Rate: decimal.Zero, Date: suite.day},
	}
	suite.mockRepo.On("FindRatesForDate", mock.Anything, domain.USD, suite.day).Return(cached, nil).Once()

	table := suite.service.GetRates(context.Background(), suite.today)

	// USD stays pinned at 1 and the unusable rows fall back.
	suite.True(table[domain.USD].Equal(decimal.NewFromInt(1)))
	suite.True(table[domain.JPY].Equal(domain.FallbackRateTable()[domain.JPY]))
	suite.Len(table, len(domain.SupportedCurrencies))
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
