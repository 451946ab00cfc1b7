package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"fintrack/internal/models"
)

func goal(target, current int64) models.SavingsGoal {
	return models.SavingsGoal{
		TargetAmount:  decimal.NewFromInt(target),
		CurrentAmount: decimal.NewFromInt(current),
	}
}

func datedTxn(amount float64, txnType, category, date string) models.Transaction {
	return models.Transaction{
		Type:     txnType,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Date:     ParseDate(date),
	}
}

func TestBuildSummary_PeriodScoped(t *testing.T) {
	transactions := []models.Transaction{
		datedTxn(1000, models.TransactionTypeIncome, "", "2024-03-05"),
		datedTxn(400, models.TransactionTypeExpense, "Food", "2024-03-10"),
		datedTxn(200, models.TransactionTypeExpense, "Food", "2024-03-15"),
	}

	ref := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	summary := BuildSummary(transactions, nil, WithPeriod(PeriodMonth, ref))

	assert.True(t, decimal.NewFromInt(1000).Equal(summary.TotalIncome))
	assert.True(t, decimal.NewFromInt(600).Equal(summary.TotalExpenses))
	assert.True(t, decimal.NewFromInt(400).Equal(summary.NetIncome))
	assert.Len(t, summary.CategoryBreakdown, 1)
	assert.True(t, decimal.NewFromInt(600).Equal(summary.CategoryBreakdown["Food"]))
}

func TestBuildSummary_PeriodScopedExcludesOutsideTransactions(t *testing.T) {
	transactions := []models.Transaction{
		datedTxn(1000, models.TransactionTypeIncome, "", "2024-03-05"),
		datedTxn(999, models.TransactionTypeIncome, "", "2024-02-28"),
		datedTxn(500, models.TransactionTypeExpense, "Food", "2024-04-01"),
	}

	ref := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	summary := BuildSummary(transactions, nil, WithPeriod(PeriodMonth, ref))

	assert.True(t, decimal.NewFromInt(1000).Equal(summary.TotalIncome))
	assert.True(t, summary.TotalExpenses.IsZero())
}

func TestBuildSummary_AllTime(t *testing.T) {
	transactions := []models.Transaction{
		datedTxn(1000, models.TransactionTypeIncome, "", "2022-01-05"),
		datedTxn(500, models.TransactionTypeExpense, "Rent", "2024-06-01"),
	}

	summary := BuildSummary(transactions, nil)

	assert.True(t, decimal.NewFromInt(1000).Equal(summary.TotalIncome))
	assert.True(t, decimal.NewFromInt(500).Equal(summary.TotalExpenses))
	assert.True(t, decimal.NewFromInt(500).Equal(summary.NetIncome))
}

func TestBuildSummary_SavingsProgress(t *testing.T) {
	goals := []models.SavingsGoal{
		goal(10000, 2500),
		goal(5000, 5000),
	}

	summary := BuildSummary(nil, goals)

	assert.True(t, decimal.NewFromInt(7500).Equal(summary.SavingsProgress.Current))
	assert.True(t, decimal.NewFromInt(15000).Equal(summary.SavingsProgress.Target))
	assert.Equal(t, int64(50), summary.SavingsProgress.Percentage)
}

func TestBuildSummary_SavingsProgressNotClamped(t *testing.T) {
	summary := BuildSummary(nil, []models.SavingsGoal{goal(1000, 1200)})

	assert.Equal(t, int64(120), summary.SavingsProgress.Percentage)
}

func TestBuildSummary_NoGoals(t *testing.T) {
	summary := BuildSummary(nil, nil, WithPeriod(PeriodMonth, time.Now()))

	assert.True(t, summary.SavingsProgress.Current.IsZero())
	assert.True(t, summary.SavingsProgress.Target.IsZero())
	assert.Equal(t, int64(0), summary.SavingsProgress.Percentage)
}

func TestBuildSummary_ZeroTargetYieldsZeroPercentage(t *testing.T) {
	// A zero target never reaches the division
	summary := BuildSummary(nil, []models.SavingsGoal{goal(0, 500)})

	assert.Equal(t, int64(0), summary.SavingsProgress.Percentage)
}

func TestBuildSummary_EmptyInputsDegradeToZeros(t *testing.T) {
	summary := BuildSummary(nil, nil)

	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpenses.IsZero())
	assert.True(t, summary.NetIncome.IsZero())
	assert.NotNil(t, summary.CategoryBreakdown)
	assert.Empty(t, summary.CategoryBreakdown)
}

func TestBuildSummary_RepeatedCallsAreIndependent(t *testing.T) {
	transactions := []models.Transaction{
		datedTxn(100, models.TransactionTypeExpense, "Food", "2024-03-05"),
	}
	ref := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	first := BuildSummary(transactions, nil, WithPeriod(PeriodMonth, ref))
	second := BuildSummary(transactions, nil, WithPeriod(PeriodMonth, ref))

	assert.Equal(t, first, second)
}
