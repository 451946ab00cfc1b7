package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/reports"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrGoalNotFound         = errors.New("savings goal not found")
	ErrCurrentExceedsTarget = errors.New("current amount cannot exceed target amount")
)

func decimalFromRequest(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return d, nil
}

// savingsGoalService implements SavingsGoalServiceInterface
type savingsGoalService struct {
	goalRepo repositories.SavingsGoalRepositoryInterface
	logger   *slog.Logger
}

// NewSavingsGoalService creates a new savings goal service
func NewSavingsGoalService(
	goalRepo repositories.SavingsGoalRepositoryInterface,
	logger *slog.Logger,
) SavingsGoalServiceInterface {
	return &savingsGoalService{
		goalRepo: goalRepo,
		logger:   logger,
	}
}

// Create creates a new savings goal for an owner
func (s *savingsGoalService) Create(ownerID uuid.UUID, req *dto.CreateSavingsGoalRequest) (*models.SavingsGoal, error) {
	target, err := decimalFromRequest(req.TargetAmount)
	if err != nil {
		return nil, err
	}

	goal := &models.SavingsGoal{
		OwnerID:      ownerID,
		Name:         req.Name,
		TargetAmount: target,
	}

	if req.CurrentAmount != "" {
		current, err := decimalFromRequest(req.CurrentAmount)
		if err != nil {
			return nil, err
		}
		// A goal cannot start over-funded. Later edits may push
		// CurrentAmount past the target, so Update has no such bound.
		if current.GreaterThan(target) {
			return nil, ErrCurrentExceedsTarget
		}
		goal.CurrentAmount = current
	}

	deadline := reports.ParseDate(req.Deadline)
	if deadline.IsZero() {
		return nil, ErrInvalidDate
	}
	goal.Deadline = deadline

	if err := s.goalRepo.Create(goal); err != nil {
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	s.logger.Info("savings goal created",
		"goal_id", goal.ID,
		"owner_id", ownerID,
		"name", goal.Name,
		"target", goal.TargetAmount.String())

	return goal, nil
}

// GetByID retrieves one of the owner's savings goals
func (s *savingsGoalService) GetByID(ownerID, goalID uuid.UUID) (*models.SavingsGoal, error) {
	goal, err := s.goalRepo.GetByID(goalID)
	if err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get savings goal: %w", err)
	}

	if goal.OwnerID != ownerID {
		return nil, ErrGoalNotFound
	}

	return goal, nil
}

// List retrieves the owner's savings goals, nearest deadline first
func (s *savingsGoalService) List(ownerID uuid.UUID) ([]models.SavingsGoal, error) {
	goals, err := s.goalRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}
	return goals, nil
}

// Update modifies an existing savings goal. Only fields present in the
// request change.
func (s *savingsGoalService) Update(ownerID, goalID uuid.UUID, req *dto.UpdateSavingsGoalRequest) (*models.SavingsGoal, error) {
	goal, err := s.GetByID(ownerID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		target, err := decimalFromRequest(*req.TargetAmount)
		if err != nil {
			return nil, err
		}
		goal.TargetAmount = target
	}
	if req.CurrentAmount != nil {
		current, err := decimalFromRequest(*req.CurrentAmount)
		if err != nil {
			return nil, err
		}
		goal.CurrentAmount = current
	}
	if req.Deadline != nil {
		deadline := reports.ParseDate(*req.Deadline)
		if deadline.IsZero() {
			return nil, ErrInvalidDate
		}
		goal.Deadline = deadline
	}

	if err := s.goalRepo.Update(goal); err != nil {
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}

	s.logger.Info("savings goal updated",
		"goal_id", goal.ID,
		"owner_id", ownerID,
		"progress", goal.ProgressPercentage())

	return goal, nil
}

// Delete removes one of the owner's savings goals
func (s *savingsGoalService) Delete(ownerID, goalID uuid.UUID) error {
	if _, err := s.GetByID(ownerID, goalID); err != nil {
		return err
	}

	if err := s.goalRepo.Delete(goalID); err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return ErrGoalNotFound
		}
		return fmt.Errorf("failed to delete savings goal: %w", err)
	}

	s.logger.Info("savings goal deleted",
		"goal_id", goalID,
		"owner_id", ownerID)

	return nil
}
