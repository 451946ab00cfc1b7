package services

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/reports"
	"fintrack/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	salaryDayOfMonth = 1
	incomeShare      = 0.25
	demoGoalCount    = 3
)

// demoDataService seeds realistic demo data for development environments.
// Generated transactions reference the owner's default category names so
// the dashboard breakdown has something to group by.
type demoDataService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	goalRepo        repositories.SavingsGoalRepositoryInterface
	faker           *gofakeit.Faker
	rng             *rand.Rand
	logger          *slog.Logger
}

// NewDemoDataService creates a new demo data service
func NewDemoDataService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	goalRepo repositories.SavingsGoalRepositoryInterface,
	logger *slog.Logger,
) DemoDataServiceInterface {
	seed := time.Now().UnixNano()
	return &demoDataService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		goalRepo:        goalRepo,
		faker:           gofakeit.New(uint64(seed)),
		rng:             rand.New(rand.NewSource(seed)),
		logger:          logger,
	}
}

// expenseRanges maps default expense category names to plausible amounts
var expenseRanges = map[string][2]float64{
	"Food":          {8.00, 120.00},
	"Rent":          {800.00, 2200.00},
	"Transport":     {5.00, 90.00},
	"Entertainment": {10.00, 80.00},
	"Utilities":     {40.00, 220.00},
	"Healthcare":    {15.00, 350.00},
}

// SeedDemoData populates an owner with categories, transactions spread
// across the requested period, and a few savings goals. Existing data is
// left untouched.
func (s *demoDataService) SeedDemoData(ownerID uuid.UUID, transactionCount int, period string) (*dto.DemoDataResult, error) {
	result := &dto.DemoDataResult{}

	categories, err := s.ensureCategories(ownerID)
	if err != nil {
		return nil, err
	}
	result.CategoriesCreated = categories

	interval := reports.ResolveInterval(period, time.Now())
	transactions := s.generateTransactions(ownerID, transactionCount, interval)
	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		return nil, fmt.Errorf("failed to seed transactions: %w", err)
	}
	result.TransactionsCreated = len(transactions)

	goals := s.generateGoals(ownerID)
	if err := s.goalRepo.CreateBatch(goals); err != nil {
		return nil, fmt.Errorf("failed to seed savings goals: %w", err)
	}
	result.GoalsCreated = len(goals)

	s.logger.Info("demo data seeded",
		"owner_id", ownerID,
		"transactions", result.TransactionsCreated,
		"categories", result.CategoriesCreated,
		"goals", result.GoalsCreated,
		"period", period)

	return result, nil
}

func (s *demoDataService) ensureCategories(ownerID uuid.UUID) (int, error) {
	existing, err := s.categoryRepo.GetByOwner(ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to check categories: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	defaults := models.DefaultCategories(ownerID)
	if err := s.categoryRepo.CreateBatch(defaults); err != nil {
		return 0, fmt.Errorf("failed to seed categories: %w", err)
	}
	return len(defaults), nil
}

func (s *demoDataService) generateTransactions(ownerID uuid.UUID, count int, interval reports.Interval) []models.Transaction {
	transactions := make([]models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		date := s.randomDate(interval)
		if s.rng.Float64() < incomeShare {
			transactions = append(transactions, s.incomeTransaction(ownerID, date))
		} else {
			transactions = append(transactions, s.expenseTransaction(ownerID, date))
		}
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})

	return transactions
}

func (s *demoDataService) incomeTransaction(ownerID uuid.UUID, date time.Time) models.Transaction {
	category := "Salary"
	description := "Salary - " + s.faker.Company()
	amount := s.faker.Price(2000, 6500)

	if s.rng.Float64() < 0.3 {
		category = "Freelance"
		description = "Freelance work for " + s.faker.Company()
		amount = s.faker.Price(150, 1800)
	}

	return models.Transaction{
		OwnerID:     ownerID,
		Type:        models.TransactionTypeIncome,
		Amount:      decimal.NewFromFloat(amount).Round(2),
		Description: description,
		Category:    category,
		Date:        date,
	}
}

func (s *demoDataService) expenseTransaction(ownerID uuid.UUID, date time.Time) models.Transaction {
	names := make([]string, 0, len(expenseRanges))
	for name := range expenseRanges {
		names = append(names, name)
	}
	sort.Strings(names)

	category := names[s.rng.Intn(len(names))]
	bounds := expenseRanges[category]
	amount := s.faker.Price(bounds[0], bounds[1])

	return models.Transaction{
		OwnerID:     ownerID,
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromFloat(amount).Round(2),
		Description: category + " - " + s.faker.Company(),
		Category:    category,
		Date:        date,
	}
}

func (s *demoDataService) generateGoals(ownerID uuid.UUID) []models.SavingsGoal {
	goals := make([]models.SavingsGoal, 0, demoGoalCount)
	names := []string{"Emergency Fund", "Vacation", "New Laptop"}

	for i := 0; i < demoGoalCount; i++ {
		target := decimal.NewFromFloat(s.faker.Price(500, 10000)).Round(2)
		current := target.Mul(decimal.NewFromFloat(s.rng.Float64())).Round(2)

		goals = append(goals, models.SavingsGoal{
			OwnerID:       ownerID,
			Name:          names[i],
			TargetAmount:  target,
			CurrentAmount: current,
			Deadline:      time.Now().AddDate(0, 1+s.rng.Intn(12), 0),
		})
	}

	return goals
}

func (s *demoDataService) randomDate(interval reports.Interval) time.Time {
	span := interval.End.Sub(interval.Start)
	if span <= 0 {
		return interval.Start
	}
	return interval.Start.Add(time.Duration(s.rng.Int63n(int64(span))))
}
