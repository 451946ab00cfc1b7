package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category with this name already exists")
	ErrCategoryTypeImmutable = errors.New("category type cannot be changed")
)

// categoryService implements CategoryServiceInterface
type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create creates a new category for an owner. Names are unique per owner,
// matched exactly.
func (s *categoryService) Create(ownerID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error) {
	existing, err := s.categoryRepo.GetByName(ownerID, req.Name)
	if err != nil && !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, ErrCategoryAlreadyExists
	}

	category := &models.Category{
		OwnerID: ownerID,
		Name:    req.Name,
		Type:    req.Type,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("category created",
		"category_id", category.ID,
		"owner_id", ownerID,
		"name", category.Name,
		"type", category.Type)

	return category, nil
}

// CreateDefaults seeds the starter category set for a new owner
func (s *categoryService) CreateDefaults(ownerID uuid.UUID) error {
	defaults := models.DefaultCategories(ownerID)
	if err := s.categoryRepo.CreateBatch(defaults); err != nil {
		return fmt.Errorf("failed to create default categories: %w", err)
	}

	s.logger.Info("default categories created",
		"owner_id", ownerID,
		"count", len(defaults))

	return nil
}

// GetByID retrieves one of the owner's categories
func (s *categoryService) GetByID(ownerID, categoryID uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if category.OwnerID != ownerID {
		return nil, ErrCategoryNotFound
	}

	return category, nil
}

// List retrieves all of the owner's categories
func (s *categoryService) List(ownerID uuid.UUID) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListByType retrieves the owner's categories of one type
func (s *categoryService) ListByType(ownerID uuid.UUID, categoryType string) ([]models.Category, error) {
	if !models.IsValidTransactionType(categoryType) {
		return nil, models.ErrInvalidCategoryType
	}

	categories, err := s.categoryRepo.GetByOwnerAndType(ownerID, categoryType)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories by type: %w", err)
	}
	return categories, nil
}

// Update renames a category. The type is fixed at creation. Renaming does
// not touch transactions that referenced the old name, so they become
// orphaned until re-categorized.
func (s *categoryService) Update(ownerID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetByID(ownerID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Type != "" && req.Type != category.Type {
		return nil, ErrCategoryTypeImmutable
	}

	if req.Name != category.Name {
		existing, err := s.categoryRepo.GetByName(ownerID, req.Name)
		if err != nil && !errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, fmt.Errorf("failed to check existing category: %w", err)
		}
		if existing != nil {
			return nil, ErrCategoryAlreadyExists
		}
	}

	oldName := category.Name
	category.Name = req.Name

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.logger.Info("category renamed",
		"category_id", category.ID,
		"owner_id", ownerID,
		"old_name", oldName,
		"new_name", category.Name)

	return category, nil
}

// Delete removes a category. Transactions keep the deleted name and show
// up as orphaned in reports.
func (s *categoryService) Delete(ownerID, categoryID uuid.UUID) error {
	if _, err := s.GetByID(ownerID, categoryID); err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info("category deleted",
		"category_id", categoryID,
		"owner_id", ownerID)

	return nil
}
