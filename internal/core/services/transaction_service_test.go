package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kakeibo-app/kakeibo-backend/internal/apperrors"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	portsrepo "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/repositories"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/services"
	"github.com/kakeibo-app/kakeibo-backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockCategoryRepo *MockCategoryRepository
	service          *services.TransactionService
	userID           string
	categoryID       string
	foodCategory     *domain.Category
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockCategoryRepo)
	suite.userID = uuid.NewString()
	suite.categoryID = uuid.NewString()
	suite.foodCategory = &domain.Category{
		CategoryID: suite.categoryID,
		Name:       "Food",
		Type:       domain.Expense,
		IsSystem:   true,
	}
}

func (suite *TransactionServiceTestSuite) validCreateRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Type:        "EXPENSE",
		Amount:      decimal.NewFromFloat(12.50),
		Currency:    "USD",
		CategoryID:  suite.categoryID,
		Description: "lunch",
		Date:        "2025-06-15",
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	req := suite.validCreateRequest()
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.userID, suite.categoryID).Return(suite.foodCategory, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.UserID == suite.userID &&
			txn.Type == domain.Expense &&
			txn.Currency == domain.USD &&
			txn.Amount.Equal(decimal.NewFromFloat(12.50)) &&
			txn.Date.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(context.Background(), suite.userID, req)

	suite.NoError(err)
	suite.NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(suite.foodCategory, txn.Category)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	req := suite.validCreateRequest()
	req.Amount = decimal.Zero

	_, err := suite.service.CreateTransaction(context.Background(), suite.userID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AmountOverMax() {
	req := suite.validCreateRequest()
	req.Amount = dto.MaxTransactionAmount.Add(decimal.NewFromInt(1))

	_, err := suite.service.CreateTransaction(context.Background(), suite.userID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownCurrency() {
	req := suite.validCreateRequest()
	req.Currency = "XYZ"

	_, err := suite.service.CreateTransaction(context.Background(), suite.userID, req)

	suite.ErrorIs(err, apperrors.ErrInvalidCurrencyCode)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CategoryNotVisible() {
	req := suite.validCreateRequest()
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.userID, suite.categoryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTransaction(context.Background(), suite.userID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CategoryTypeMismatch() {
	req := suite.validCreateRequest()
	req.Type = "INCOME"
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.userID, suite.categoryID).Return(suite.foodCategory, nil).Once()

	_, err := suite.service.CreateTransaction(context.Background(), suite.userID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_ParsesFilters() {
	params := dto.ListTransactionsParams{
		From:     "2025-06-01",
		To:       "2025-06-30",
		Type:     "EXPENSE",
		Currency: "JPY",
		Limit:    10,
	}
	suite.mockTxnRepo.On("ListTransactions", mock.Anything, suite.userID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.From != nil && f.To != nil &&
			f.Type != nil && *f.Type == domain.Expense &&
			f.Currency != nil && *f.Currency == domain.JPY &&
			f.Limit == 10
	})).Return([]domain.Transaction{}, "", nil).Once()

	resp, err := suite.service.ListTransactions(context.Background(), suite.userID, params)

	suite.NoError(err)
	suite.Empty(resp.Transactions)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RangeInverted() {
	params := dto.ListTransactionsParams{From: "2025-06-30", To: "2025-06-01"}

	_, err := suite.service.ListTransactions(context.Background(), suite.userID, params)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RevalidatesCategory() {
	existing := &domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(20),
		Currency:      domain.USD,
		CategoryID:    suite.categoryID,
		Date:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	newType := "INCOME"
	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, suite.userID, existing.TransactionID).Return(existing, nil).Once()
	// The expense category no longer matches the new INCOME type.
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.userID, suite.categoryID).Return(suite.foodCategory, nil).Once()

	_, err := suite.service.UpdateTransaction(context.Background(), suite.userID, existing.TransactionID, dto.UpdateTransactionRequest{Type: &newType})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	txnID := uuid.NewString()
	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, suite.userID, txnID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateTransaction(context.Background(), suite.userID, txnID, dto.UpdateTransactionRequest{})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	txnID := uuid.NewString()
	suite.mockTxnRepo.On("DeleteTransaction", mock.Anything, suite.userID, txnID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(context.Background(), suite.userID, txnID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
