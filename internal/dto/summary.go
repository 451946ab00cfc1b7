package dto

// Summary and Report DTOs

// ReportQuery contains the query parameters for a period report. Unknown
// period values fall back to month rather than failing the request, so the
// field carries no validation tag.
type ReportQuery struct {
	Period string `query:"period"`
	Date   string `query:"date"`
}

// SavingsProgressResponse aggregates all savings goals
type SavingsProgressResponse struct {
	CurrentAmount string `json:"currentAmount"`
	TargetAmount  string `json:"targetAmount"`
	Percentage    int64  `json:"percentage"`

	CurrentAmountDisplay string `json:"currentAmountDisplay,omitempty"`
	TargetAmountDisplay  string `json:"targetAmountDisplay,omitempty"`
}

// SummaryResponse represents the all-time dashboard summary. Raw amounts are
// decimal strings; the Display fields are locale-formatted for rendering.
type SummaryResponse struct {
	TotalIncome       string            `json:"totalIncome"`
	TotalExpenses     string            `json:"totalExpenses"`
	NetIncome         string            `json:"netIncome"`
	CategoryBreakdown map[string]string `json:"categoryBreakdown"`

	TotalIncomeDisplay   string `json:"totalIncomeDisplay,omitempty"`
	TotalExpensesDisplay string `json:"totalExpensesDisplay,omitempty"`
	NetIncomeDisplay     string `json:"netIncomeDisplay,omitempty"`

	SavingsProgress SavingsProgressResponse `json:"savingsProgress"`
}

// ReportResponse represents a period-scoped report. Period and the interval
// bounds echo what was actually resolved, including the month fallback.
type ReportResponse struct {
	Period        string `json:"period"`
	IntervalStart string `json:"intervalStart"`
	IntervalEnd   string `json:"intervalEnd"`

	SummaryResponse

	// Categories referenced by transactions in the period that no longer
	// exist as category records.
	OrphanCategories []string `json:"orphanCategories,omitempty"`
}
