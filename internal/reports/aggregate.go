package reports

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// Totals holds income/expense sums and the per-category expense
// breakdown for a transaction set.
type Totals struct {
	TotalIncome       decimal.Decimal            `json:"total_income"`
	TotalExpenses     decimal.Decimal            `json:"total_expenses"`
	NetIncome         decimal.Decimal            `json:"net_income"`
	CategoryBreakdown map[string]decimal.Decimal `json:"category_breakdown"`
}

// Aggregate computes totals over the given transactions. The category
// breakdown covers expenses only, keyed by each transaction's literal
// category string: no case or whitespace normalization, so "Food" and
// "food" produce separate entries. Empty input yields zeros and an
// empty map. Sums accumulate in input order.
func Aggregate(transactions []models.Transaction) Totals {
	totals := Totals{
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		NetIncome:         decimal.Zero,
		CategoryBreakdown: make(map[string]decimal.Decimal),
	}

	for i := range transactions {
		txn := &transactions[i]

		switch txn.Type {
		case models.TransactionTypeIncome:
			totals.TotalIncome = totals.TotalIncome.Add(txn.Amount)
		case models.TransactionTypeExpense:
			totals.TotalExpenses = totals.TotalExpenses.Add(txn.Amount)

			current, ok := totals.CategoryBreakdown[txn.Category]
			if !ok {
				current = decimal.Zero
			}
			totals.CategoryBreakdown[txn.Category] = current.Add(txn.Amount)
		}
	}

	totals.NetIncome = totals.TotalIncome.Sub(totals.TotalExpenses)

	return totals
}
