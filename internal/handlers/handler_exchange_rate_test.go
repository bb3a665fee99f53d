package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	portssvc "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/services"
	"github.com/kakeibo-app/kakeibo-backend/internal/dto"
	"github.com/kakeibo-app/kakeibo-backend/internal/handlers"
)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) GetRates(ctx context.Context, today time.Time) domain.RateTable {
	args := m.Called(ctx, today)
	return args.Get(0).(domain.RateTable)
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Test Suite ---
type ExchangeRateHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockRateService
}

func (suite *ExchangeRateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterCustomValidations())

	suite.router = gin.New()
	suite.mockService = new(MockRateService)

	// No auth middleware: these endpoints are public.
	handlers.RegisterExchangeRateRoutes(suite.router, suite.mockService)
}

func (suite *ExchangeRateHandlerTestSuite) doGet(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ExchangeRateHandlerTestSuite) testRateTable() domain.RateTable {
	return domain.RateTable{
		domain.USD: decimal.NewFromInt(1),
		domain.JPY: decimal.NewFromInt(150),
		domain.EUR: decimal.RequireFromString("0.9"),
	}
}

// --- Test Cases ---

func (suite *ExchangeRateHandlerTestSuite) TestGetRates_ReturnsTodaysTable() {
	suite.mockService.On("GetRates", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(suite.testRateTable()).Once()

	w := suite.doGet("/api/v1/exchange-rates")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ExchangeRatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.Base)
	suite.Len(resp.Rates, 3)
	suite.True(resp.Rates["JPY"].Equal(decimal.NewFromInt(150)))
	suite.Equal(time.Now().UTC().Format(domain.RateDateFormat), resp.Date)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExchangeRateHandlerTestSuite) TestConvert_PivotsThroughBase() {
	suite.mockService.On("GetRates", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(suite.testRateTable()).Once()

	// 15000 JPY -> USD at 150 JPY per USD = 100.00
	w := suite.doGet("/api/v1/exchange-rates/convert?amount=15000&from=JPY&to=USD")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("JPY", resp.From)
	suite.Equal("USD", resp.To)
	suite.True(resp.ConvertedAmount.Equal(decimal.NewFromInt(100)), "got %s", resp.ConvertedAmount)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExchangeRateHandlerTestSuite) TestConvert_SameCurrencyPassthrough() {
	suite.mockService.On("GetRates", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(suite.testRateTable()).Once()

	w := suite.doGet("/api/v1/exchange-rates/convert?amount=42.42&from=EUR&to=EUR")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.ConvertedAmount.Equal(decimal.RequireFromString("42.42")))
}

func (suite *ExchangeRateHandlerTestSuite) TestConvert_RejectsUnsupportedCurrency() {
	w := suite.doGet("/api/v1/exchange-rates/convert?amount=10&from=GBP&to=USD")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetRates")
}

func (suite *ExchangeRateHandlerTestSuite) TestConvert_RejectsNegativeAmount() {
	w := suite.doGet("/api/v1/exchange-rates/convert?amount=-5&from=USD&to=JPY")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetRates")
}

func (suite *ExchangeRateHandlerTestSuite) TestConvert_MissingParams() {
	w := suite.doGet("/api/v1/exchange-rates/convert?amount=10&from=USD")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetRates")
}

// --- Run Test Suite ---
func TestExchangeRateHandler(t *testing.T) {
	suite.Run(t, new(ExchangeRateHandlerTestSuite))
}
