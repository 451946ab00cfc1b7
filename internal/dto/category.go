package dto

import (
	"time"

	"github.com/google/uuid"
)

// Category Request DTOs

// CreateCategoryRequest contains the data to create a new category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
	Type string `json:"type" validate:"required,transaction_type"`
}

// UpdateCategoryRequest renames a category. The type is fixed at creation;
// requests that try to change it are rejected.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
	Type string `json:"type" validate:"omitempty,transaction_type"`
}

// Category Response DTOs

// CategoryResponse represents a category on the wire
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListCategoriesResponse represents the response for listing categories
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}
