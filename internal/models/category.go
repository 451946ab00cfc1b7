package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidCategoryType = errors.New("invalid category type")
	ErrCategoryTypeChange  = errors.New("category type cannot be changed after creation")
)

// Category is a named grouping for transactions. Its type is fixed at
// creation time. Transactions reference categories by name, not by ID,
// so renaming a category orphans the transactions recorded under the
// old name; that is a known limitation of the data model, not a bug.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name      string    `gorm:"type:varchar(50);not null;index" json:"name"`
	Type      string    `gorm:"type:varchar(20);not null" json:"type"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if c.Name == "" {
		return errors.New("category name is required")
	}

	if len(c.Name) > MaxCategoryNameLength {
		return errors.New("category name too long")
	}

	if !IsValidTransactionType(c.Type) {
		return ErrInvalidCategoryType
	}

	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// DefaultCategories returns the categories created for a new user
func DefaultCategories(ownerID uuid.UUID) []Category {
	defaults := []struct {
		name string
		typ  string
	}{
		{"Salary", TransactionTypeIncome},
		{"Freelance", TransactionTypeIncome},
		{"Food", TransactionTypeExpense},
		{"Rent", TransactionTypeExpense},
		{"Transport", TransactionTypeExpense},
		{"Entertainment", TransactionTypeExpense},
		{"Utilities", TransactionTypeExpense},
		{"Healthcare", TransactionTypeExpense},
	}

	categories := make([]Category, 0, len(defaults))
	for _, d := range defaults {
		categories = append(categories, Category{
			OwnerID: ownerID,
			Name:    d.name,
			Type:    d.typ,
		})
	}
	return categories
}
