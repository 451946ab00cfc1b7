package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category
func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// CreateBatch creates multiple categories in a single database transaction
func (r *categoryRepository) CreateBatch(categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("failed to create batch categories: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a category by ID
func (r *categoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	category := &models.Category{ID: id}
	if err := r.db.First(category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// GetByOwner retrieves all categories for an owner
func (r *categoryRepository) GetByOwner(ownerID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories for owner: %w", err)
	}
	return categories, nil
}

// GetByOwnerAndType retrieves an owner's categories of one type
func (r *categoryRepository) GetByOwnerAndType(ownerID uuid.UUID, categoryType string) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("owner_id = ? AND type = ?", ownerID, categoryType).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories by type: %w", err)
	}
	return categories, nil
}

// GetByName retrieves a category by exact name match. Names are matched
// case-sensitively, the same rule the reporting breakdown uses.
func (r *categoryRepository) GetByName(ownerID uuid.UUID, name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("owner_id = ? AND name = ?", ownerID, name).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}
	return &category, nil
}

// Update updates a category
func (r *categoryRepository) Update(category *models.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

// Delete removes a category. Transactions referencing the category by
// name are left untouched.
func (r *categoryRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Category{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
