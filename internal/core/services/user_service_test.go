package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kakeibo-app/kakeibo-backend/internal/apperrors"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/services"
	"github.com/kakeibo-app/kakeibo-backend/internal/dto"
	"github.com/kakeibo-app/kakeibo-backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiry *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiry)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	req := dto.RegisterRequest{
		Email:    "Taro@Example.com",
		Password: "password123",
	}
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "taro@example.com" &&
			u.AuthProvider == domain.ProviderLocal &&
			u.DefaultCurrency == domain.USD &&
			u.DisplayName == "taro" &&
			u.PasswordHash != "" &&
			utils.CheckPasswordHash("password123", u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(context.Background(), req)

	suite.NoError(err)
	suite.NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	req := dto.RegisterRequest{Email: "taro@example.com", Password: "password123"}
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.RegisterUser(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestRegisterUser_CustomDefaultCurrency() {
	req := dto.RegisterRequest{
		Email:           "hana@example.com",
		Password:        "password123",
		DisplayName:     "Hana",
		DefaultCurrency: "jpy",
	}
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.DefaultCurrency == domain.JPY && u.DisplayName == "Hana"
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(context.Background(), req)

	suite.NoError(err)
	suite.Equal(domain.JPY, user.DefaultCurrency)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ExistingProviderIdentity() {
	existing := &domain.User{UserID: uuid.NewString(), Email: "taro@example.com", AuthProvider: domain.ProviderGoogle, ProviderUserID: "sub-123"}
	suite.mockUserRepo.On("FindUserByProvider", mock.Anything, domain.ProviderGoogle, "sub-123").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(context.Background(), domain.ProviderGoogle, "sub-123", "taro@example.com", "Taro")

	suite.NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_LinksExistingEmailAccount() {
	existing := &domain.User{UserID: uuid.NewString(), Email: "taro@example.com", AuthProvider: domain.ProviderLocal}
	suite.mockUserRepo.On("FindUserByProvider", mock.Anything, domain.ProviderGoogle, "sub-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "taro@example.com").Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == existing.UserID && u.AuthProvider == domain.ProviderGoogle && u.ProviderUserID == "sub-123"
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(context.Background(), domain.ProviderGoogle, "sub-123", "taro@example.com", "Taro")

	suite.NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_CreatesNewAccount() {
	suite.mockUserRepo.On("FindUserByProvider", mock.Anything, domain.ProviderGoogle, "sub-999").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new@example.com" &&
			u.AuthProvider == domain.ProviderGoogle &&
			u.ProviderUserID == "sub-999" &&
			u.DefaultCurrency == domain.USD
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(context.Background(), domain.ProviderGoogle, "sub-999", "new@example.com", "New User")

	suite.NoError(err)
	suite.Equal("New User", user.DisplayName)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_ChangesPreferences() {
	userID := uuid.NewString()
	existing := &domain.User{UserID: userID, Email: "taro@example.com", DisplayName: "Taro", DefaultCurrency: domain.USD}
	newName := "Taro Y."
	newCurrency := "EUR"
	suite.mockUserRepo.On("FindUserByID", mock.Anything, userID).Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.DisplayName == "Taro Y." && u.DefaultCurrency == domain.EUR
	})).Return(nil).Once()

	user, err := suite.service.UpdateUser(context.Background(), userID, dto.UpdateUserRequest{
		DisplayName:     &newName,
		DefaultCurrency: &newCurrency,
	})

	suite.NoError(err)
	suite.Equal(domain.EUR, user.DefaultCurrency)
}

func (suite *UserServiceTestSuite) TestUpdateUser_RejectsUnknownCurrency() {
	userID := uuid.NewString()
	existing := &domain.User{UserID: userID, DefaultCurrency: domain.USD}
	bad := "GBP"
	suite.mockUserRepo.On("FindUserByID", mock.Anything, userID).Return(existing, nil).Once()

	_, err := suite.service.UpdateUser(context.Background(), userID, dto.UpdateUserRequest{DefaultCurrency: &bad})

	suite.ErrorIs(err, apperrors.ErrInvalidCurrencyCode)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_RejectsEmptyDisplayName() {
	userID := uuid.NewString()
	existing := &domain.User{UserID: userID, DisplayName: "Taro"}
	empty := "   "
	suite.mockUserRepo.On("FindUserByID", mock.Anything, userID).Return(existing, nil).Once()

	_, err := suite.service.UpdateUser(context.Background(), userID, dto.UpdateUserRequest{DisplayName: &empty})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
