package services

import (
	"log/slog"
	"testing"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	categoryRepo *repository_mocks.MockCategoryRepositoryInterface
	service      CategoryServiceInterface
	ownerID      uuid.UUID
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.service = NewCategoryService(s.categoryRepo, slog.Default())
	s.ownerID = uuid.New()
}

func (s *CategoryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) TestCreate_Success() {
	req := &dto.CreateCategoryRequest{
		Name: "Subscriptions",
		Type: models.TransactionTypeExpense,
	}

	s.categoryRepo.EXPECT().GetByName(s.ownerID, "Subscriptions").Return(nil, repositories.ErrCategoryNotFound).Times(1)
	s.categoryRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	category, err := s.service.Create(s.ownerID, req)

	s.NoError(err)
	s.NotNil(category)
	s.Equal("Subscriptions", category.Name)
	s.Equal(models.TransactionTypeExpense, category.Type)
	s.Equal(s.ownerID, category.OwnerID)
}

func (s *CategoryServiceTestSuite) TestCreate_DuplicateName() {
	req := &dto.CreateCategoryRequest{
		Name: "Food",
		Type: models.TransactionTypeExpense,
	}

	existing := &models.Category{
		ID:      uuid.New(),
		OwnerID: s.ownerID,
		Name:    "Food",
		Type:    models.TransactionTypeExpense,
	}

	s.categoryRepo.EXPECT().GetByName(s.ownerID, "Food").Return(existing, nil).Times(1)

	category, err := s.service.Create(s.ownerID, req)

	s.Equal(ErrCategoryAlreadyExists, err)
	s.Nil(category)
}

func (s *CategoryServiceTestSuite) TestCreateDefaults_SeedsStarterSet() {
	s.categoryRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(
		func(categories []models.Category) error {
			s.Len(categories, 8)
			for _, c := range categories {
				s.Equal(s.ownerID, c.OwnerID)
			}
			return nil
		}).Times(1)

	err := s.service.CreateDefaults(s.ownerID)

	s.NoError(err)
}

func (s *CategoryServiceTestSuite) TestGetByID_OtherOwnerHidden() {
	categoryID := uuid.New()
	stored := &models.Category{
		ID:      categoryID,
		OwnerID: uuid.New(),
		Name:    "Food",
		Type:    models.TransactionTypeExpense,
	}

	s.categoryRepo.EXPECT().GetByID(categoryID).Return(stored, nil).Times(1)

	category, err := s.service.GetByID(s.ownerID, categoryID)

	s.Equal(ErrCategoryNotFound, err)
	s.Nil(category)
}

func (s *CategoryServiceTestSuite) TestListByType_RejectsUnknownType() {
	categories, err := s.service.ListByType(s.ownerID, "transfer")

	s.ErrorIs(err, models.ErrInvalidCategoryType)
	s.Nil(categories)
}

func (s *CategoryServiceTestSuite) TestListByType_Success() {
	expected := []models.Category{
		{ID: uuid.New(), OwnerID: s.ownerID, Name: "Salary", Type: models.TransactionTypeIncome},
	}

	s.categoryRepo.EXPECT().GetByOwnerAndType(s.ownerID, models.TransactionTypeIncome).Return(expected, nil).Times(1)

	categories, err := s.service.ListByType(s.ownerID, models.TransactionTypeIncome)

	s.NoError(err)
	s.Len(categories, 1)
}

func (s *CategoryServiceTestSuite) TestUpdate_Rename() {
	categoryID := uuid.New()
	stored := &models.Category{
		ID:      categoryID,
		OwnerID: s.ownerID,
		Name:    "Food",
		Type:    models.TransactionTypeExpense,
	}

	req := &dto.UpdateCategoryRequest{Name: "Groceries"}

	s.categoryRepo.EXPECT().GetByID(categoryID).Return(stored, nil).Times(1)
	s.categoryRepo.EXPECT().GetByName(s.ownerID, "Groceries").Return(nil, repositories.ErrCategoryNotFound).Times(1)
	s.categoryRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	category, err := s.service.Update(s.ownerID, categoryID, req)

	s.NoError(err)
	s.Equal("Groceries", category.Name)
}

func (s *CategoryServiceTestSuite) TestUpdate_TypeChangeRejected() {
	categoryID := uuid.New()
	stored := &models.Category{
		ID:      categoryID,
		OwnerID: s.ownerID,
		Name:    "Food",
		Type:    models.TransactionTypeExpense,
	}

	req := &dto.UpdateCategoryRequest{
		Name: "Food",
		Type: models.TransactionTypeIncome,
	}

	s.categoryRepo.EXPECT().GetByID(categoryID).Return(stored, nil).Times(1)

	category, err := s.service.Update(s.ownerID, categoryID, req)

	s.Equal(ErrCategoryTypeImmutable, err)
	s.Nil(category)
}

func (s *CategoryServiceTestSuite) TestUpdate_RenameToExistingName() {
	categoryID := uuid.New()
	stored := &models.Category{
		ID:      categoryID,
		OwnerID: s.ownerID,
		Name:    "Food",
		Type:    models.TransactionTypeExpense,
	}

	taken := &models.Category{
		ID:      uuid.New(),
		OwnerID: s.ownerID,
		Name:    "Rent",
		Type:    models.TransactionTypeExpense,
	}

	req := &dto.UpdateCategoryRequest{Name: "Rent"}

	s.categoryRepo.EXPECT().GetByID(categoryID).Return(stored, nil).Times(1)
	s.categoryRepo.EXPECT().GetByName(s.ownerID, "Rent").Return(taken, nil).Times(1)

	category, err := s.service.Update(s.ownerID, categoryID, req)

	s.Equal(ErrCategoryAlreadyExists, err)
	s.Nil(category)
}

func (s *CategoryServiceTestSuite) TestDelete_Success() {
	categoryID := uuid.New()
	stored := &models.Category{
		ID:      categoryID,
		OwnerID: s.ownerID,
		Name:    "Food",
		Type:    models.TransactionTypeExpense,
	}

	s.categoryRepo.EXPECT().GetByID(categoryID).Return(stored, nil).Times(1)
	s.categoryRepo.EXPECT().Delete(categoryID).Return(nil).Times(1)

	err := s.service.Delete(s.ownerID, categoryID)

	s.NoError(err)
}

func (s *CategoryServiceTestSuite) TestDelete_NotFound() {
	categoryID := uuid.New()

	s.categoryRepo.EXPECT().GetByID(categoryID).Return(nil, repositories.ErrCategoryNotFound).Times(1)

	err := s.service.Delete(s.ownerID, categoryID)

	s.Equal(ErrCategoryNotFound, err)
}
