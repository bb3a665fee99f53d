package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/services"
	"github.com/kakeibo-app/kakeibo-backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	service          *services.CategoryService
	userID           string
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo)
	suite.userID = uuid.NewString()
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	req := dto.CreateCategoryRequest{
		Name:  "  Side Projects ",
		Type:  "INCOME",
		Icon:  "briefcase",
		Color: "#4CAF50",
	}
	suite.mockCategoryRepo.On("SaveCategory", mock.Anything, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Side Projects" &&
			c.Type == domain.Income &&
			c.UserID == suite.userID &&
			!c.IsSystem &&
			c.Color == "#4CAF50"
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(context.Background(), suite.userID, req)

	suite.NoError(err)
	suite.NotEmpty(category.CategoryID)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DefaultsColor() {
	req := dto.CreateCategoryRequest{Name: "Misc", Type: "EXPENSE"}
	suite.mockCategoryRepo.On("SaveCategory", mock.Anything, mock.MatchedBy(func(c domain.Category) bool {
		return c.Color != ""
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(context.Background(), suite.userID, req)

	suite.NoError(err)
	suite.NotEmpty(category.Color)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_RepoError() {
	req := dto.CreateCategoryRequest{Name: "Misc", Type: "EXPENSE"}
	suite.mockCategoryRepo.On("SaveCategory", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	_, err := suite.service.CreateCategory(context.Background(), suite.userID, req)

	suite.Error(err)
}

func (suite *CategoryServiceTestSuite) TestListCategories_PassesThrough() {
	expected := []domain.Category{
		{CategoryID: uuid.NewString(), Name: "Salary", Type: domain.Income, IsSystem: true},
		{CategoryID: uuid.NewString(), Name: "Food", Type: domain.Expense, IsSystem: true},
	}
	suite.mockCategoryRepo.On("ListCategories", mock.Anything, suite.userID).Return(expected, nil).Once()

	categories, err := suite.service.ListCategories(context.Background(), suite.userID)

	suite.NoError(err)
	suite.Equal(expected, categories)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
