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

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategory creates a new category
// @Summary Create category
// @Description Create a new income or expense category for the authenticated user
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} SuccessResponse{data=dto.CategoryResponse} "Category created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_002 - Category name already in use"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.Create(userID, &req)
	if err != nil {
		if err == services.ErrCategoryAlreadyExists {
			return SendError(c, errors.CategoryAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toCategoryResponse(category),
		Message: "Category created successfully",
	})
}

// ListCategories retrieves the user's categories, optionally by type
// @Summary List categories
// @Description Retrieve all of the authenticated user's categories, optionally filtered by type
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param type query string false "Filter by category type" Enums(income, expense)
// @Success 200 {object} dto.ListCategoriesResponse "Categories"
// @Failure 422 {object} errors.ErrorResponse "CATEGORY_004 - Invalid category type"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var categories []models.Category
	if categoryType := c.QueryParam("type"); categoryType != "" {
		categories, err = h.categoryService.ListByType(userID, categoryType)
		if err != nil {
			if err == models.ErrInvalidCategoryType {
				return SendError(c, errors.CategoryInvalidType)
			}
			return SendSystemError(c, err)
		}
	} else {
		categories, err = h.categoryService.List(userID)
		if err != nil {
			return SendSystemError(c, err)
		}
	}

	response := dto.ListCategoriesResponse{
		Categories: toCategoryResponses(categories),
		Total:      len(categories),
	}

	return c.JSON(http.StatusOK, response)
}

// GetCategory retrieves a specific category by ID
// @Summary Get category by ID
// @Description Retrieve one of the authenticated user's categories
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} dto.CategoryResponse "Category details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid category ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Category ID must be a valid UUID"))
	}

	category, err := h.categoryService.GetByID(userID, categoryID)
	if err != nil {
		if err == services.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// UpdateCategory renames an existing category
// @Summary Update category
// @Description Rename one of the authenticated user's categories. The category type cannot change after creation.
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Param request body dto.UpdateCategoryRequest true "New category name"
// @Success 200 {object} SuccessResponse{data=dto.CategoryResponse} "Category updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_002 - Category name already in use or CATEGORY_003 - Category type cannot change"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Category ID must be a valid UUID"))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.Update(userID, categoryID, &req)
	if err != nil {
		switch err {
		case services.ErrCategoryNotFound:
			return SendError(c, errors.CategoryNotFound)
		case services.ErrCategoryAlreadyExists:
			return SendError(c, errors.CategoryAlreadyExists)
		case services.ErrCategoryTypeImmutable:
			return SendError(c, errors.CategoryTypeImmutable)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toCategoryResponse(category),
		Message: "Category updated successfully",
	})
}

// DeleteCategory removes a category
// @Summary Delete category
// @Description Delete one of the authenticated user's categories. Transactions keep the category name and show up as orphaned in reports.
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} SuccessResponse{message=string} "Category deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid category ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Category ID must be a valid UUID"))
	}

	if err := h.categoryService.Delete(userID, categoryID); err != nil {
		if err == services.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Category deleted successfully",
	})
}

func toCategoryResponse(category *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Type:      category.Type,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func toCategoryResponses(categories []models.Category) []dto.CategoryResponse {
	result := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, toCategoryResponse(&categories[i]))
	}
	return result
}
