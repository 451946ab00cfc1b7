package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SavingsGoalHandler handles savings goal HTTP requests
type SavingsGoalHandler struct {
	goalService services.SavingsGoalServiceInterface
}

// NewSavingsGoalHandler creates a new savings goal handler
func NewSavingsGoalHandler(goalService services.SavingsGoalServiceInterface) *SavingsGoalHandler {
	return &SavingsGoalHandler{
		goalService: goalService,
	}
}

// CreateSavingsGoal creates a new savings goal
// @Summary Create savings goal
// @Description Create a new savings goal with a target amount and deadline
// @Tags Savings Goals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSavingsGoalRequest true "Goal details"
// @Success 201 {object} SuccessResponse{data=dto.SavingsGoalResponse} "Goal created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or VALIDATION_006 - Invalid deadline"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 422 {object} errors.ErrorResponse "GOAL_003 - Invalid amount"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals [post]
func (h *SavingsGoalHandler) CreateSavingsGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateSavingsGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	goal, err := h.goalService.Create(userID, &req)
	if err != nil {
		switch err {
		case services.ErrInvalidAmount:
			return SendError(c, errors.GoalInvalidAmount)
		case services.ErrCurrentExceedsTarget:
			return SendError(c, errors.GoalInvalidAmount, errors.WithDetails("Current amount cannot exceed target amount"))
		case services.ErrInvalidDate:
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("Deadline must be a valid date"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toSavingsGoalResponse(goal),
		Message: "Savings goal created successfully",
	})
}

// ListSavingsGoals retrieves all of the user's savings goals
// @Summary List savings goals
// @Description Retrieve all of the authenticated user's savings goals
// @Tags Savings Goals
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ListSavingsGoalsResponse "Savings goals"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals [get]
func (h *SavingsGoalHandler) ListSavingsGoals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goals, err := h.goalService.List(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListSavingsGoalsResponse{
		Goals: toSavingsGoalResponses(goals),
		Total: len(goals),
	}

	return c.JSON(http.StatusOK, response)
}

// GetSavingsGoal retrieves a specific savings goal by ID
// @Summary Get savings goal by ID
// @Description Retrieve one of the authenticated user's savings goals
// @Tags Savings Goals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} dto.SavingsGoalResponse "Goal details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid goal ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals/{id} [get]
func (h *SavingsGoalHandler) GetSavingsGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Goal ID must be a valid UUID"))
	}

	goal, err := h.goalService.GetByID(userID, goalID)
	if err != nil {
		if err == services.ErrGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toSavingsGoalResponse(goal))
}

// UpdateSavingsGoal modifies an existing savings goal
// @Summary Update savings goal
// @Description Update fields of one of the authenticated user's savings goals. Omitted fields keep their stored value.
// @Tags Savings Goals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param request body dto.UpdateSavingsGoalRequest true "Fields to update"
// @Success 200 {object} SuccessResponse{data=dto.SavingsGoalResponse} "Goal updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or VALIDATION_006 - Invalid deadline"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Failure 422 {object} errors.ErrorResponse "GOAL_003 - Invalid amount"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals/{id} [put]
func (h *SavingsGoalHandler) UpdateSavingsGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Goal ID must be a valid UUID"))
	}

	var req dto.UpdateSavingsGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	goal, err := h.goalService.Update(userID, goalID, &req)
	if err != nil {
		switch err {
		case services.ErrGoalNotFound:
			return SendError(c, errors.GoalNotFound)
		case services.ErrInvalidAmount:
			return SendError(c, errors.GoalInvalidAmount)
		case services.ErrInvalidDate:
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("Deadline must be a valid date"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toSavingsGoalResponse(goal),
		Message: "Savings goal updated successfully",
	})
}

// DeleteSavingsGoal removes a savings goal
// @Summary Delete savings goal
// @Description Delete one of the authenticated user's savings goals
// @Tags Savings Goals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} SuccessResponse{message=string} "Goal deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid goal ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals/{id} [delete]
func (h *SavingsGoalHandler) DeleteSavingsGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Goal ID must be a valid UUID"))
	}

	if err := h.goalService.Delete(userID, goalID); err != nil {
		if err == services.ErrGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Savings goal deleted successfully",
	})
}

func toSavingsGoalResponse(goal *models.SavingsGoal) dto.SavingsGoalResponse {
	return dto.SavingsGoalResponse{
		ID:            goal.ID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount.String(),
		CurrentAmount: goal.CurrentAmount.String(),
		Progress:      goal.ProgressPercentage(),
		Deadline:      goal.Deadline,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

func toSavingsGoalResponses(goals []models.SavingsGoal) []dto.SavingsGoalResponse {
	result := make([]dto.SavingsGoalResponse, 0, len(goals))
	for i := range goals {
		result = append(result, toSavingsGoalResponse(&goals[i]))
	}
	return result
}
