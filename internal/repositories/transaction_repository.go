package repositories

import (
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetAllByOwner retrieves the full transaction set for an owner, newest
// attributed date first. Used to materialize snapshots for summaries.
func (r *transactionRepository) GetAllByOwner(ownerID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions for owner: %w", err)
	}
	return transactions, nil
}

// GetByDateRange retrieves an owner's transactions attributed within a date range
func (r *transactionRepository) GetByDateRange(ownerID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("owner_id = ? AND date BETWEEN ? AND ?", ownerID, startDate, endDate).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// GetWithFilters retrieves transactions with multiple filters
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{})

	if filters.OwnerID != uuid.Nil {
		query = query.Where("owner_id = ?", filters.OwnerID)
	}
	if filters.StartDate != nil {
		query = query.Where("date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", *filters.EndDate)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.MinAmount != nil {
		query = query.Where("amount >= ?", *filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		query = query.Where("amount <= ?", *filters.MaxAmount)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	if err := query.Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// GetPage retrieves a page of an owner's transactions for cursor-based
// pagination. The cursor is the (created_at, id) pair of the last row
// on the previous page; both nil fetch the first page.
func (r *transactionRepository) GetPage(ownerID uuid.UUID, before *time.Time, beforeID *uuid.UUID, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction

	query := r.db.Where("owner_id = ?", ownerID)

	if before != nil && beforeID != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", *before, *before, *beforeID)
	}

	if err := query.Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transaction page: %w", err)
	}

	return transactions, nil
}

// Update updates a transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	if err := r.db.Save(transaction).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// Delete removes a transaction
func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Transaction{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// CountByOwner counts an owner's transactions
func (r *transactionRepository) CountByOwner(ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}
