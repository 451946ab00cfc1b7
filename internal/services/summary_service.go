package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/reports"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// summaryService assembles dashboard summaries and period reports from
// owner snapshots. The aggregation itself lives in the reports package;
// this service handles fetching, display formatting and orphan flagging.
type summaryService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	goalRepo        repositories.SavingsGoalRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	formatter       *DisplayFormatter
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	transactionRepo repositories.TransactionRepositoryInterface,
	goalRepo repositories.SavingsGoalRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	formatter *DisplayFormatter,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SummaryServiceInterface {
	return &summaryService{
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		categoryRepo:    categoryRepo,
		formatter:       formatter,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetSummary builds the all-time dashboard summary for an owner
func (s *summaryService) GetSummary(ctx context.Context, ownerID uuid.UUID) (*dto.SummaryResponse, error) {
	started := time.Now()

	transactions, goals, _, err := s.fetchSnapshots(ctx, ownerID, false)
	if err != nil {
		return nil, err
	}

	summary := reports.BuildSummary(transactions, goals)
	response := s.toSummaryResponse(summary)

	s.logger.Info("summary built",
		"owner_id", ownerID,
		"transactions", len(transactions),
		"goals", len(goals))
	s.metrics.IncrementCounter("summaries_built", map[string]string{"scope": "all_time"})
	s.metrics.RecordProcessingTime("summary_build", time.Since(started))

	return response, nil
}

// GetReport builds a period-scoped report. Unknown period values fall
// back to month; an unparseable date is an error.
func (s *summaryService) GetReport(ctx context.Context, ownerID uuid.UUID, query *dto.ReportQuery) (*dto.ReportResponse, error) {
	started := time.Now()

	ref := time.Now()
	if query.Date != "" {
		ref = reports.ParseDate(query.Date)
		if ref.IsZero() {
			return nil, ErrInvalidDate
		}
	}

	period := query.Period
	if !reports.IsValidPeriodType(period) {
		period = reports.PeriodMonth
	}

	transactions, goals, categories, err := s.fetchSnapshots(ctx, ownerID, true)
	if err != nil {
		return nil, err
	}

	interval := reports.ResolveInterval(period, ref)
	summary := reports.BuildSummary(transactions, goals, reports.WithPeriod(period, ref))

	resolver := reports.NewNameResolver(categories)
	orphans := reports.OrphanCategories(reports.Totals{CategoryBreakdown: summary.CategoryBreakdown}, resolver)

	response := &dto.ReportResponse{
		Period:           period,
		IntervalStart:    interval.Start.Format(time.RFC3339),
		IntervalEnd:      interval.End.Format(time.RFC3339),
		SummaryResponse:  *s.toSummaryResponse(summary),
		OrphanCategories: orphans,
	}

	s.logger.Info("report built",
		"owner_id", ownerID,
		"period", period,
		"interval_start", interval.Start,
		"interval_end", interval.End,
		"orphan_categories", len(orphans))
	s.metrics.IncrementCounter("summaries_built", map[string]string{"scope": period})
	s.metrics.RecordProcessingTime("report_build", time.Since(started))

	return response, nil
}

// fetchSnapshots loads the owner's data concurrently. Categories are
// only needed for reports, where orphans are flagged.
func (s *summaryService) fetchSnapshots(ctx context.Context, ownerID uuid.UUID, withCategories bool) ([]models.Transaction, []models.SavingsGoal, []models.Category, error) {
	var (
		transactions []models.Transaction
		goals        []models.SavingsGoal
		categories   []models.Category
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.GetAllByOwner(ownerID)
		if err != nil {
			return fmt.Errorf("failed to fetch transactions: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		goals, err = s.goalRepo.GetByOwner(ownerID)
		if err != nil {
			return fmt.Errorf("failed to fetch savings goals: %w", err)
		}
		return nil
	})

	if withCategories {
		g.Go(func() error {
			var err error
			categories, err = s.categoryRepo.GetByOwner(ownerID)
			if err != nil {
				return fmt.Errorf("failed to fetch categories: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	return transactions, goals, categories, nil
}

func (s *summaryService) toSummaryResponse(summary reports.FinancialSummary) *dto.SummaryResponse {
	breakdown := make(map[string]string, len(summary.CategoryBreakdown))
	for name, amount := range summary.CategoryBreakdown {
		breakdown[name] = amount.String()
	}

	return &dto.SummaryResponse{
		TotalIncome:       summary.TotalIncome.String(),
		TotalExpenses:     summary.TotalExpenses.String(),
		NetIncome:         summary.NetIncome.String(),
		CategoryBreakdown: breakdown,

		TotalIncomeDisplay:   s.formatter.FormatAmount(summary.TotalIncome),
		TotalExpensesDisplay: s.formatter.FormatAmount(summary.TotalExpenses),
		NetIncomeDisplay:     s.formatter.FormatAmount(summary.NetIncome),

		SavingsProgress: dto.SavingsProgressResponse{
			CurrentAmount:        summary.SavingsProgress.Current.String(),
			TargetAmount:         summary.SavingsProgress.Target.String(),
			Percentage:           summary.SavingsProgress.Percentage,
			CurrentAmountDisplay: s.formatter.FormatAmount(summary.SavingsProgress.Current),
			TargetAmountDisplay:  s.formatter.FormatAmount(summary.SavingsProgress.Target),
		},
	}
}
