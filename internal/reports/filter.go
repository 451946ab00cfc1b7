package reports

import (
	"time"

	"fintrack/internal/models"
)

// dateLayouts are the text forms historical data may carry. Tried in
// order during normalization.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// ParseDate normalizes a stored text date to a comparable instant.
// Returns the zero time when the value is unparseable; callers treat
// zero-dated records as excluded rather than failing.
func ParseDate(value string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FilterByInterval selects the transactions whose attributed date falls
// within the interval, inclusive on both ends. Input order is
// preserved. Transactions with a zero date (a failed normalization
// upstream) are excluded.
func FilterByInterval(transactions []models.Transaction, interval Interval) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))

	for i := range transactions {
		txn := &transactions[i]

		if txn.Date.IsZero() {
			continue
		}

		if interval.Contains(txn.Date) {
			filtered = append(filtered, *txn)
		}
	}

	return filtered
}
