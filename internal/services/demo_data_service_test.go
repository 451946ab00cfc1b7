package services

import (
	"log/slog"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/reports"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DemoDataServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	categoryRepo    *repository_mocks.MockCategoryRepositoryInterface
	goalRepo        *repository_mocks.MockSavingsGoalRepositoryInterface
	service         DemoDataServiceInterface
	ownerID         uuid.UUID
}

func (s *DemoDataServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.goalRepo = repository_mocks.NewMockSavingsGoalRepositoryInterface(s.ctrl)
	s.service = NewDemoDataService(s.transactionRepo, s.categoryRepo, s.goalRepo, slog.Default())
	s.ownerID = uuid.New()
}

func (s *DemoDataServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDemoDataServiceSuite(t *testing.T) {
	suite.Run(t, new(DemoDataServiceTestSuite))
}

func (s *DemoDataServiceTestSuite) TestSeedDemoData_FreshOwner() {
	s.categoryRepo.EXPECT().GetByOwner(s.ownerID).Return([]models.Category{}, nil)
	s.categoryRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(categories []models.Category) error {
		s.Len(categories, len(models.DefaultCategories(s.ownerID)))
		for _, category := range categories {
			s.Equal(s.ownerID, category.OwnerID)
		}
		return nil
	})

	interval := reports.ResolveInterval("month", time.Now())
	s.transactionRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(transactions []models.Transaction) error {
		s.Len(transactions, 40)
		for _, tx := range transactions {
			s.Equal(s.ownerID, tx.OwnerID)
			s.Contains([]string{models.TransactionTypeIncome, models.TransactionTypeExpense}, tx.Type)
			s.True(tx.Amount.GreaterThan(decimal.Zero))
			s.NotEmpty(tx.Category)
			s.False(tx.Date.Before(interval.Start))
			s.False(tx.Date.After(interval.End))
		}
		// Generated batch arrives in chronological order
		for i := 1; i < len(transactions); i++ {
			s.False(transactions[i].Date.Before(transactions[i-1].Date))
		}
		return nil
	})

	s.goalRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(goals []models.SavingsGoal) error {
		s.Len(goals, 3)
		for _, goal := range goals {
			s.Equal(s.ownerID, goal.OwnerID)
			s.True(goal.TargetAmount.GreaterThan(decimal.Zero))
			s.True(goal.CurrentAmount.GreaterThanOrEqual(decimal.Zero))
		}
		return nil
	})

	result, err := s.service.SeedDemoData(s.ownerID, 40, "month")
	s.NoError(err)
	s.Equal(40, result.TransactionsCreated)
	s.Equal(len(models.DefaultCategories(s.ownerID)), result.CategoriesCreated)
	s.Equal(3, result.GoalsCreated)
}

func (s *DemoDataServiceTestSuite) TestSeedDemoData_ExistingCategoriesUntouched() {
	existing := []models.Category{
		{ID: uuid.New(), OwnerID: s.ownerID, Name: "Food", Type: models.TransactionTypeExpense},
	}
	s.categoryRepo.EXPECT().GetByOwner(s.ownerID).Return(existing, nil)
	s.transactionRepo.EXPECT().CreateBatch(gomock.Any()).Return(nil)
	s.goalRepo.EXPECT().CreateBatch(gomock.Any()).Return(nil)

	result, err := s.service.SeedDemoData(s.ownerID, 10, "week")
	s.NoError(err)
	s.Equal(0, result.CategoriesCreated)
	s.Equal(10, result.TransactionsCreated)
}

func (s *DemoDataServiceTestSuite) TestSeedDemoData_UnknownPeriodFallsBackToMonth() {
	s.categoryRepo.EXPECT().GetByOwner(s.ownerID).Return([]models.Category{}, nil)
	s.categoryRepo.EXPECT().CreateBatch(gomock.Any()).Return(nil)

	monthInterval := reports.ResolveInterval("month", time.Now())
	s.transactionRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(transactions []models.Transaction) error {
		for _, tx := range transactions {
			s.False(tx.Date.Before(monthInterval.Start))
			s.False(tx.Date.After(monthInterval.End))
		}
		return nil
	})
	s.goalRepo.EXPECT().CreateBatch(gomock.Any()).Return(nil)

	_, err := s.service.SeedDemoData(s.ownerID, 25, "quarter")
	s.NoError(err)
}
