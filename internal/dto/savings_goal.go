package dto

import (
	"time"

	"github.com/google/uuid"
)

// Savings Goal Request DTOs

// CreateSavingsGoalRequest contains the data to create a new savings goal
type CreateSavingsGoalRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=100"`
	TargetAmount  string `json:"targetAmount" validate:"required,positive_amount"`
	CurrentAmount string `json:"currentAmount" validate:"omitempty"`
	Deadline      string `json:"deadline" validate:"required"`
}

// UpdateSavingsGoalRequest contains the fields that can change on an
// existing goal. Nil pointers leave the stored value untouched.
type UpdateSavingsGoalRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=100"`
	TargetAmount  *string `json:"targetAmount" validate:"omitempty,positive_amount"`
	CurrentAmount *string `json:"currentAmount" validate:"omitempty"`
	Deadline      *string `json:"deadline" validate:"omitempty"`
}

// Savings Goal Response DTOs

// SavingsGoalResponse represents a savings goal on the wire. Progress is a
// whole-number percentage and may exceed 100 for over-funded goals.
type SavingsGoalResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  string    `json:"targetAmount"`
	CurrentAmount string    `json:"currentAmount"`
	Progress      int64     `json:"progress"`
	Deadline      time.Time `json:"deadline"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ListSavingsGoalsResponse represents the response for listing savings goals
type ListSavingsGoalsResponse struct {
	Goals []SavingsGoalResponse `json:"goals"`
	Total int                   `json:"total"`
}
