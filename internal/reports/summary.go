package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// SavingsProgress aggregates all savings goals into a single
// current/target pair. Percentage is rounded and deliberately not
// clamped: over-funded goals report more than 100.
type SavingsProgress struct {
	Current    decimal.Decimal `json:"current"`
	Target     decimal.Decimal `json:"target"`
	Percentage int64           `json:"percentage"`
}

// FinancialSummary is the presentation-ready result consumed by
// dashboard and report views.
type FinancialSummary struct {
	TotalIncome       decimal.Decimal            `json:"total_income"`
	TotalExpenses     decimal.Decimal            `json:"total_expenses"`
	NetIncome         decimal.Decimal            `json:"net_income"`
	SavingsProgress   SavingsProgress            `json:"savings_progress"`
	CategoryBreakdown map[string]decimal.Decimal `json:"category_breakdown"`
}

// SummaryOption adjusts how BuildSummary treats its transaction
// snapshot.
type SummaryOption func(*summaryConfig)

type summaryConfig struct {
	scoped    bool
	period    string
	reference time.Time
}

// WithPeriod scopes the summary to the interval containing ref for the
// given period type. Without this option the summary covers the full
// snapshot (the dashboard's all-time mode).
func WithPeriod(period string, ref time.Time) SummaryOption {
	return func(cfg *summaryConfig) {
		cfg.scoped = true
		cfg.period = period
		cfg.reference = ref
	}
}

// BuildSummary assembles totals and savings progress from snapshots of
// transactions and goals. It has no error states: empty or malformed
// inputs degrade to zeroed outputs. Each call is independent; no state
// is retained between invocations.
func BuildSummary(transactions []models.Transaction, goals []models.SavingsGoal, opts ...SummaryOption) FinancialSummary {
	var cfg summaryConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.scoped {
		interval := ResolveInterval(cfg.period, cfg.reference)
		transactions = FilterByInterval(transactions, interval)
	}

	totals := Aggregate(transactions)

	return FinancialSummary{
		TotalIncome:       totals.TotalIncome,
		TotalExpenses:     totals.TotalExpenses,
		NetIncome:         totals.NetIncome,
		SavingsProgress:   buildSavingsProgress(goals),
		CategoryBreakdown: totals.CategoryBreakdown,
	}
}

func buildSavingsProgress(goals []models.SavingsGoal) SavingsProgress {
	progress := SavingsProgress{
		Current: decimal.Zero,
		Target:  decimal.Zero,
	}

	for i := range goals {
		progress.Current = progress.Current.Add(goals[i].CurrentAmount)
		progress.Target = progress.Target.Add(goals[i].TargetAmount)
	}

	if progress.Target.GreaterThan(decimal.Zero) {
		progress.Percentage = progress.Current.
			Div(progress.Target).
			Mul(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
	}

	return progress
}
