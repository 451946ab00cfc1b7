package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	OwnerID   uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      string
	Category  string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Limit     int
}
