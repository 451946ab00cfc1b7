package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidTargetAmount   = errors.New("target amount must be positive")
	ErrNegativeCurrentAmount = errors.New("current amount cannot be negative")
)

// SavingsGoal is a target/progress pair with a deadline. CurrentAmount
// may exceed TargetAmount through later edits; progress above 100% is
// reported as-is rather than clamped.
type SavingsGoal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_amount"`
	Deadline      time.Time       `gorm:"not null" json:"deadline"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate hook for SavingsGoal
func (g *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

// BeforeUpdate hook for SavingsGoal
func (g *SavingsGoal) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now()
	return g.Validate()
}

// Validate validates the savings goal fields
func (g *SavingsGoal) Validate() error {
	if g.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if g.Name == "" {
		return errors.New("goal name is required")
	}

	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTargetAmount
	}

	if g.CurrentAmount.IsNegative() {
		return ErrNegativeCurrentAmount
	}

	return nil
}

// IsFunded returns true when the goal has reached its target
func (g *SavingsGoal) IsFunded() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// IsOverdue returns true when the deadline has passed without the goal
// being funded
func (g *SavingsGoal) IsOverdue() bool {
	return !g.IsFunded() && time.Now().After(g.Deadline)
}

// ProgressPercentage returns the rounded funding percentage, 0 when the
// target is zero. Not clamped to 100.
func (g *SavingsGoal) ProgressPercentage() int64 {
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// TableName returns the table name for SavingsGoal
func (g *SavingsGoal) TableName() string {
	return "savings_goals"
}
