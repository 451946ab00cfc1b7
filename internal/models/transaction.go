package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	MaxCategoryNameLength = 50
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
)

// Transaction is a single financial event attributed to a calendar date.
// The category field is a loose reference by name: it may point at a
// Category that has since been renamed or deleted, and aggregation still
// groups it under the literal string.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Type        string          `gorm:"type:varchar(20);not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`
	Category    string          `gorm:"type:varchar(50);index" json:"category,omitempty"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	// Date is the attributed calendar date, distinct from record creation
	if t.Date.IsZero() {
		t.Date = now
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Description == "" {
		return errors.New("transaction description is required")
	}

	if len(t.Category) > MaxCategoryNameLength {
		return errors.New("category name too long")
	}

	return nil
}

// IsIncome returns true for income transactions
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true for expense transactions
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
