package dto

import (
	"time"

	"github.com/google/uuid"
)

// Transaction Request DTOs

// CreateTransactionRequest contains the data to record a new transaction.
// Amount travels as a decimal string to avoid float rounding on the wire.
type CreateTransactionRequest struct {
	Type        string `json:"type" validate:"required,transaction_type"`
	Amount      string `json:"amount" validate:"required,positive_amount"`
	Description string `json:"description" validate:"required,min=1,max=500"`
	Category    string `json:"category" validate:"omitempty,max=50"`
	Date        string `json:"date" validate:"omitempty"`
}

// UpdateTransactionRequest contains the fields that can change on an
// existing transaction. Nil pointers leave the stored value untouched.
type UpdateTransactionRequest struct {
	Type        *string `json:"type" validate:"omitempty,transaction_type"`
	Amount      *string `json:"amount" validate:"omitempty,positive_amount"`
	Description *string `json:"description" validate:"omitempty,min=1,max=500"`
	Category    *string `json:"category" validate:"omitempty,max=50"`
	Date        *string `json:"date" validate:"omitempty"`
}

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	StartDate *time.Time `query:"startDate"`
	EndDate   *time.Time `query:"endDate"`
	Type      string     `query:"type"`
	Category  string     `query:"category"`
	MinAmount string     `query:"minAmount"`
	MaxAmount string     `query:"maxAmount"`
}

// PaginationParams contains pagination parameters
type PaginationParams struct {
	Cursor string `query:"cursor"`
	Limit  int    `query:"limit"`
}

// Transaction Response DTOs

// TransactionResponse represents a single transaction on the wire
type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	HasMore    bool   `json:"hasMore"`
	NextCursor string `json:"nextCursor,omitempty"`
	Limit      int    `json:"limit"`
	Total      int64  `json:"total,omitempty"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}
