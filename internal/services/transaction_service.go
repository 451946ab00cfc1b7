package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/reports"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidDate         = errors.New("invalid date format")
	ErrInvalidAmount       = errors.New("invalid amount")
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Create records a new transaction for an owner. An omitted date is
// attributed to the moment of recording.
func (s *transactionService) Create(ownerID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, ErrInvalidAmount
	}

	date := time.Now()
	if req.Date != "" {
		date = reports.ParseDate(req.Date)
		if date.IsZero() {
			return nil, ErrInvalidDate
		}
	}

	transaction := &models.Transaction{
		OwnerID:     ownerID,
		Type:        req.Type,
		Amount:      amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.logger.Info("transaction recorded",
		"transaction_id", transaction.ID,
		"owner_id", ownerID,
		"type", transaction.Type,
		"amount", transaction.Amount.String())
	s.metrics.IncrementCounter("transactions_recorded", map[string]string{"type": transaction.Type})

	return transaction, nil
}

// GetByID retrieves one of the owner's transactions
func (s *transactionService) GetByID(ownerID, transactionID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	// Ownership check hides other owners' transactions entirely
	if transaction.OwnerID != ownerID {
		return nil, ErrTransactionNotFound
	}

	return transaction, nil
}

// List retrieves the owner's transactions matching the given filters
func (s *transactionService) List(ownerID uuid.UUID, filters *dto.TransactionFilters) ([]models.Transaction, int64, error) {
	repoFilters := models.TransactionFilters{
		OwnerID:   ownerID,
		StartDate: filters.StartDate,
		EndDate:   filters.EndDate,
		Type:      filters.Type,
		Category:  filters.Category,
	}

	if filters.MinAmount != "" {
		min, err := decimal.NewFromString(filters.MinAmount)
		if err != nil {
			return nil, 0, ErrInvalidAmount
		}
		repoFilters.MinAmount = &min
	}
	if filters.MaxAmount != "" {
		max, err := decimal.NewFromString(filters.MaxAmount)
		if err != nil {
			return nil, 0, ErrInvalidAmount
		}
		repoFilters.MaxAmount = &max
	}

	transactions, total, err := s.transactionRepo.GetWithFilters(repoFilters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, total, nil
}

// GetPage retrieves a cursor page of the owner's transactions
func (s *transactionService) GetPage(ownerID uuid.UUID, before *time.Time, beforeID *uuid.UUID, limit int) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.GetPage(ownerID, before, beforeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction page: %w", err)
	}
	return transactions, nil
}

// Update modifies an existing transaction. Only fields present in the
// request change.
func (s *transactionService) Update(ownerID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error) {
	transaction, err := s.GetByID(ownerID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		transaction.Type = *req.Type
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return nil, ErrInvalidAmount
		}
		transaction.Amount = amount
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.Category != nil {
		transaction.Category = *req.Category
	}
	if req.Date != nil {
		date := reports.ParseDate(*req.Date)
		if date.IsZero() {
			return nil, ErrInvalidDate
		}
		transaction.Date = date
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.logger.Info("transaction updated",
		"transaction_id", transaction.ID,
		"owner_id", ownerID)

	return transaction, nil
}

// Delete removes one of the owner's transactions
func (s *transactionService) Delete(ownerID, transactionID uuid.UUID) error {
	if _, err := s.GetByID(ownerID, transactionID); err != nil {
		return err
	}

	if err := s.transactionRepo.Delete(transactionID); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.logger.Info("transaction deleted",
		"transaction_id", transactionID,
		"owner_id", ownerID)

	return nil
}
