package services

import (
	"log/slog"
	"testing"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SavingsGoalServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	goalRepo *repository_mocks.MockSavingsGoalRepositoryInterface
	service  SavingsGoalServiceInterface
	ownerID  uuid.UUID
}

func (s *SavingsGoalServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.goalRepo = repository_mocks.NewMockSavingsGoalRepositoryInterface(s.ctrl)
	s.service = NewSavingsGoalService(s.goalRepo, slog.Default())
	s.ownerID = uuid.New()
}

func (s *SavingsGoalServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSavingsGoalServiceSuite(t *testing.T) {
	suite.Run(t, new(SavingsGoalServiceTestSuite))
}

func (s *SavingsGoalServiceTestSuite) TestCreate_Success() {
	req := &dto.CreateSavingsGoalRequest{
		Name:          "Emergency Fund",
		TargetAmount:  "5000",
		CurrentAmount: "1200.50",
		Deadline:      "2025-12-31",
	}

	s.goalRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	goal, err := s.service.Create(s.ownerID, req)

	s.NoError(err)
	s.NotNil(goal)
	s.Equal("Emergency Fund", goal.Name)
	s.True(goal.TargetAmount.Equal(decimal.RequireFromString("5000")))
	s.True(goal.CurrentAmount.Equal(decimal.RequireFromString("1200.50")))
	s.Equal(2025, goal.Deadline.Year())
}

func (s *SavingsGoalServiceTestSuite) TestCreate_DefaultsCurrentToZero() {
	req := &dto.CreateSavingsGoalRequest{
		Name:         "Vacation",
		TargetAmount: "3000",
		Deadline:     "2026-06-01",
	}

	s.goalRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	goal, err := s.service.Create(s.ownerID, req)

	s.NoError(err)
	s.True(goal.CurrentAmount.IsZero())
}

func (s *SavingsGoalServiceTestSuite) TestCreate_InvalidTargetAmount() {
	req := &dto.CreateSavingsGoalRequest{
		Name:         "Broken",
		TargetAmount: "abc",
		Deadline:     "2026-06-01",
	}

	goal, err := s.service.Create(s.ownerID, req)

	s.Equal(ErrInvalidAmount, err)
	s.Nil(goal)
}

func (s *SavingsGoalServiceTestSuite) TestCreate_CurrentCannotExceedTarget() {
	req := &dto.CreateSavingsGoalRequest{
		Name:          "Overfunded",
		TargetAmount:  "1000",
		CurrentAmount: "1200",
		Deadline:      "2026-06-01",
	}

	goal, err := s.service.Create(s.ownerID, req)

	s.Equal(ErrCurrentExceedsTarget, err)
	s.Nil(goal)
}

func (s *SavingsGoalServiceTestSuite) TestCreate_CurrentMayEqualTarget() {
	req := &dto.CreateSavingsGoalRequest{
		Name:          "Fully Funded",
		TargetAmount:  "1000",
		CurrentAmount: "1000",
		Deadline:      "2026-06-01",
	}

	s.goalRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	goal, err := s.service.Create(s.ownerID, req)

	s.NoError(err)
	s.Equal(int64(100), goal.ProgressPercentage())
}

func (s *SavingsGoalServiceTestSuite) TestCreate_InvalidDeadline() {
	req := &dto.CreateSavingsGoalRequest{
		Name:         "Broken",
		TargetAmount: "1000",
		Deadline:     "next summer",
	}

	goal, err := s.service.Create(s.ownerID, req)

	s.Equal(ErrInvalidDate, err)
	s.Nil(goal)
}

func (s *SavingsGoalServiceTestSuite) TestGetByID_OtherOwnerHidden() {
	goalID := uuid.New()
	stored := &models.SavingsGoal{
		ID:           goalID,
		OwnerID:      uuid.New(),
		Name:         "Hidden",
		TargetAmount: decimal.RequireFromString("1000"),
	}

	s.goalRepo.EXPECT().GetByID(goalID).Return(stored, nil).Times(1)

	goal, err := s.service.GetByID(s.ownerID, goalID)

	s.Equal(ErrGoalNotFound, err)
	s.Nil(goal)
}

func (s *SavingsGoalServiceTestSuite) TestList_Success() {
	expected := []models.SavingsGoal{
		{ID: uuid.New(), OwnerID: s.ownerID, Name: "Sooner", TargetAmount: decimal.RequireFromString("100"), Deadline: time.Now().AddDate(0, 1, 0)},
		{ID: uuid.New(), OwnerID: s.ownerID, Name: "Later", TargetAmount: decimal.RequireFromString("200"), Deadline: time.Now().AddDate(0, 6, 0)},
	}

	s.goalRepo.EXPECT().GetByOwner(s.ownerID).Return(expected, nil).Times(1)

	goals, err := s.service.List(s.ownerID)

	s.NoError(err)
	s.Len(goals, 2)
}

func (s *SavingsGoalServiceTestSuite) TestUpdate_PatchesCurrentAmount() {
	goalID := uuid.New()
	stored := &models.SavingsGoal{
		ID:            goalID,
		OwnerID:       s.ownerID,
		Name:          "Emergency Fund",
		TargetAmount:  decimal.RequireFromString("5000"),
		CurrentAmount: decimal.RequireFromString("1000"),
		Deadline:      time.Now().AddDate(1, 0, 0),
	}

	newCurrent := "2500"
	req := &dto.UpdateSavingsGoalRequest{CurrentAmount: &newCurrent}

	s.goalRepo.EXPECT().GetByID(goalID).Return(stored, nil).Times(1)
	s.goalRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	goal, err := s.service.Update(s.ownerID, goalID, req)

	s.NoError(err)
	s.True(goal.CurrentAmount.Equal(decimal.RequireFromString("2500")))
	s.Equal("Emergency Fund", goal.Name)
	s.Equal(int64(50), goal.ProgressPercentage())
}

func (s *SavingsGoalServiceTestSuite) TestUpdate_CurrentMayExceedTarget() {
	goalID := uuid.New()
	stored := &models.SavingsGoal{
		ID:            goalID,
		OwnerID:       s.ownerID,
		Name:          "Emergency Fund",
		TargetAmount:  decimal.RequireFromString("5000"),
		CurrentAmount: decimal.RequireFromString("4800"),
		Deadline:      time.Now().AddDate(1, 0, 0),
	}

	// Unlike creation, edits are allowed to push progress past 100%
	overshoot := "6000"
	req := &dto.UpdateSavingsGoalRequest{CurrentAmount: &overshoot}

	s.goalRepo.EXPECT().GetByID(goalID).Return(stored, nil).Times(1)
	s.goalRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	goal, err := s.service.Update(s.ownerID, goalID, req)

	s.NoError(err)
	s.True(goal.CurrentAmount.Equal(decimal.RequireFromString("6000")))
	s.Equal(int64(120), goal.ProgressPercentage())
}

func (s *SavingsGoalServiceTestSuite) TestUpdate_InvalidDeadline() {
	goalID := uuid.New()
	stored := &models.SavingsGoal{
		ID:           goalID,
		OwnerID:      s.ownerID,
		Name:         "Emergency Fund",
		TargetAmount: decimal.RequireFromString("5000"),
	}

	badDeadline := "someday"
	req := &dto.UpdateSavingsGoalRequest{Deadline: &badDeadline}

	s.goalRepo.EXPECT().GetByID(goalID).Return(stored, nil).Times(1)

	goal, err := s.service.Update(s.ownerID, goalID, req)

	s.Equal(ErrInvalidDate, err)
	s.Nil(goal)
}

func (s *SavingsGoalServiceTestSuite) TestDelete_Success() {
	goalID := uuid.New()
	stored := &models.SavingsGoal{
		ID:      goalID,
		OwnerID: s.ownerID,
	}

	s.goalRepo.EXPECT().GetByID(goalID).Return(stored, nil).Times(1)
	s.goalRepo.EXPECT().Delete(goalID).Return(nil).Times(1)

	err := s.service.Delete(s.ownerID, goalID)

	s.NoError(err)
}

func (s *SavingsGoalServiceTestSuite) TestDelete_NotFound() {
	goalID := uuid.New()

	s.goalRepo.EXPECT().GetByID(goalID).Return(nil, repositories.ErrGoalNotFound).Times(1)

	err := s.service.Delete(s.ownerID, goalID)

	s.Equal(ErrGoalNotFound, err)
}
