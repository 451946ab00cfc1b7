package services

import (
	"errors"
	"fmt"
	"regexp"

	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	BCryptCost = 12

	MinPasswordLength = 12
	MaxPasswordLength = 72 // Bcrypt algorithm limitation
)

var (
	ErrPasswordEmpty        = errors.New("password cannot be empty")
	ErrPasswordTooShort     = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrPasswordTooLong      = fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	ErrPasswordNoUppercase  = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLowercase  = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoNumber     = errors.New("password must contain at least one number")
	ErrPasswordNoSpecial    = errors.New("password must contain at least one special character")
	ErrCurrentPasswordWrong = errors.New("current password is incorrect")
	ErrSamePassword         = errors.New("new password must be different from current password")
	ErrInvalidUserID        = errors.New("user ID is required")

	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	numberRegex    = regexp.MustCompile(`[0-9]`)
	specialRegex   = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{}|;:,.<>?]`)
)

// PasswordPolicyError returns the underlying password policy violation if err
// is (or wraps) one, nil otherwise. Handlers use it to turn policy failures
// into 400 responses instead of system errors.
func PasswordPolicyError(err error) error {
	policyErrors := []error{
		ErrPasswordEmpty,
		ErrPasswordTooShort,
		ErrPasswordTooLong,
		ErrPasswordNoUppercase,
		ErrPasswordNoLowercase,
		ErrPasswordNoNumber,
		ErrPasswordNoSpecial,
	}
	for _, policyErr := range policyErrors {
		if errors.Is(err, policyErr) {
			return policyErr
		}
	}
	return nil
}

// PasswordService handles password hashing and validation
type PasswordService struct {
	cost     int
	userRepo repositories.UserRepositoryInterface
}

// NewPasswordService creates a new password service with default settings
func NewPasswordService(userRepo repositories.UserRepositoryInterface) PasswordServiceInterface {
	return &PasswordService{
		cost:     BCryptCost,
		userRepo: userRepo,
	}
}

// ValidatePassword checks if a password meets all security requirements
func (ps *PasswordService) ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}

	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	if !uppercaseRegex.MatchString(password) {
		return ErrPasswordNoUppercase
	}

	if !lowercaseRegex.MatchString(password) {
		return ErrPasswordNoLowercase
	}

	if !numberRegex.MatchString(password) {
		return ErrPasswordNoNumber
	}

	if !specialRegex.MatchString(password) {
		return ErrPasswordNoSpecial
	}

	return nil
}

// HashPassword validates and hashes a password using bcrypt
func (ps *PasswordService) HashPassword(password string) (string, error) {
	if err := ps.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("password validation failed: %w", err)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), ps.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// ComparePassword compares a plain password with a hashed password
// Returns true if they match, false otherwise
func (ps *PasswordService) ComparePassword(password, hash string) bool {
	// bcrypt.CompareHashAndPassword provides timing-attack resistance per OWASP guidelines
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// HashPasswordWithoutValidation hashes a password without validation
// Used for system-generated passwords that bypass standard validation rules
func (ps *PasswordService) HashPasswordWithoutValidation(password string) (string, error) {
	if password == "" {
		return "", ErrPasswordEmpty
	}

	if len(password) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), ps.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// PasswordStrength returns a score from 0-100 indicating password strength
func (ps *PasswordService) PasswordStrength(password string) int {
	if password == "" {
		return 0
	}

	score := ps.calculateLengthScore(len(password))
	score += ps.calculateCharacterDiversityScore(password)
	score += ps.calculateEntropyBonus(password)

	if ps.ValidatePassword(password) == nil && score < 80 {
		// Meets all requirements, ensure minimum acceptable score
		score = 80
	}

	if score > 100 {
		score = 100
	}

	return score
}

func (ps *PasswordService) calculateLengthScore(length int) int {
	score := 0
	if length >= 8 {
		score += 10
	}
	if length >= 12 {
		score += 10
	}
	if length >= 16 {
		score += 10
	}
	if length >= 20 {
		score += 10
	}
	return score
}

func (ps *PasswordService) calculateCharacterDiversityScore(password string) int {
	score := 0
	if uppercaseRegex.MatchString(password) {
		score += 15
	}
	if lowercaseRegex.MatchString(password) {
		score += 15
	}
	if numberRegex.MatchString(password) {
		score += 15
	}
	if specialRegex.MatchString(password) {
		score += 15
	}
	return score
}

func (ps *PasswordService) calculateEntropyBonus(password string) int {
	uniqueChars := make(map[rune]bool)
	for _, char := range password {
		uniqueChars[char] = true
	}

	// Entropy bonus for character variety
	if len(uniqueChars) > len(password)*3/4 {
		return 10
	}
	if len(uniqueChars) > len(password)/2 {
		return 5
	}
	return 0
}

// UpdatePassword allows a user to update their own password
func (ps *PasswordService) UpdatePassword(userID uuid.UUID, currentPassword, newPassword string) error {
	if ps.userRepo == nil {
		return errors.New("user repository not configured")
	}

	if userID == uuid.Nil {
		return ErrInvalidUserID
	}

	if currentPassword == "" {
		return errors.New("current password is required")
	}

	if newPassword == "" {
		return errors.New("new password is required")
	}

	if currentPassword == newPassword {
		return ErrSamePassword
	}

	if err := ps.ValidatePassword(newPassword); err != nil {
		return err
	}

	user, err := ps.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return repositories.ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if !ps.ComparePassword(currentPassword, user.PasswordHash) {
		return ErrCurrentPasswordWrong
	}

	hashedPassword, err := ps.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := ps.userRepo.UpdatePasswordHash(user.ID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
