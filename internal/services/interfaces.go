package services

import (
	"context"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken string) (*dto.TokenResponse, error)
	Logout(accessToken string) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	HashPasswordWithoutValidation(password string) (string, error)
	PasswordStrength(password string) int
	UpdatePassword(userID uuid.UUID, currentPassword, newPassword string) error
}

// TransactionServiceInterface defines owner-scoped transaction operations.
// Every call names the owner explicitly; nothing is read from ambient state.
type TransactionServiceInterface interface {
	Create(ownerID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetByID(ownerID, transactionID uuid.UUID) (*models.Transaction, error)
	List(ownerID uuid.UUID, filters *dto.TransactionFilters) ([]models.Transaction, int64, error)
	GetPage(ownerID uuid.UUID, before *time.Time, beforeID *uuid.UUID, limit int) ([]models.Transaction, error)
	Update(ownerID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error)
	Delete(ownerID, transactionID uuid.UUID) error
}

// CategoryServiceInterface defines owner-scoped category operations
type CategoryServiceInterface interface {
	Create(ownerID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error)
	CreateDefaults(ownerID uuid.UUID) error
	GetByID(ownerID, categoryID uuid.UUID) (*models.Category, error)
	List(ownerID uuid.UUID) ([]models.Category, error)
	ListByType(ownerID uuid.UUID, categoryType string) ([]models.Category, error)
	Update(ownerID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	Delete(ownerID, categoryID uuid.UUID) error
}

// SavingsGoalServiceInterface defines owner-scoped savings goal operations
type SavingsGoalServiceInterface interface {
	Create(ownerID uuid.UUID, req *dto.CreateSavingsGoalRequest) (*models.SavingsGoal, error)
	GetByID(ownerID, goalID uuid.UUID) (*models.SavingsGoal, error)
	List(ownerID uuid.UUID) ([]models.SavingsGoal, error)
	Update(ownerID, goalID uuid.UUID, req *dto.UpdateSavingsGoalRequest) (*models.SavingsGoal, error)
	Delete(ownerID, goalID uuid.UUID) error
}

// SummaryServiceInterface builds dashboard summaries and period reports
type SummaryServiceInterface interface {
	GetSummary(ctx context.Context, ownerID uuid.UUID) (*dto.SummaryResponse, error)
	GetReport(ctx context.Context, ownerID uuid.UUID, query *dto.ReportQuery) (*dto.ReportResponse, error)
}

// DemoDataServiceInterface seeds realistic demo data for development
type DemoDataServiceInterface interface {
	SeedDemoData(ownerID uuid.UUID, transactionCount int, period string) (*dto.DemoDataResult, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
