package repositories

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetAllByOwner(ownerID uuid.UUID) ([]models.Transaction, error)
	GetByDateRange(ownerID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetPage(ownerID uuid.UUID, before *time.Time, beforeID *uuid.UUID, limit int) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
	CountByOwner(ownerID uuid.UUID) (int64, error)
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	CreateBatch(categories []models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByOwner(ownerID uuid.UUID) ([]models.Category, error)
	GetByOwnerAndType(ownerID uuid.UUID, categoryType string) ([]models.Category, error)
	GetByName(ownerID uuid.UUID, name string) (*models.Category, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
}

// SavingsGoalRepositoryInterface defines the contract for savings goal repository operations
type SavingsGoalRepositoryInterface interface {
	Create(goal *models.SavingsGoal) error
	CreateBatch(goals []models.SavingsGoal) error
	GetByID(id uuid.UUID) (*models.SavingsGoal, error)
	GetByOwner(ownerID uuid.UUID) ([]models.SavingsGoal, error)
	Update(goal *models.SavingsGoal) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateFields(userID uuid.UUID, fields map[string]interface{}) error
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
	UpdateFailedLoginAttempts(user *models.User) error
	ResetFailedLoginAttempts(userID uuid.UUID) error
	UnlockAccount(userID uuid.UUID) error
	Delete(userID uuid.UUID) error
}

type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByID(id uuid.UUID) (*models.RefreshToken, error)
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	GetActiveByUserID(userID uuid.UUID) ([]*models.RefreshToken, error)
	Update(token *models.RefreshToken) error
	Revoke(tokenID uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
	DeleteRevokedOlderThan(duration time.Duration) (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	DeleteExpired() (int64, error)
}
