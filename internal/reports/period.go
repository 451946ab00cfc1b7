package reports

import "time"

// PeriodType selects the aggregation window for a report.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// Interval is an inclusive date range derived from a period type and a
// reference date. It is never stored.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the interval, inclusive on
// both ends.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && !t.After(iv.End)
}

// ResolveInterval computes the inclusive interval for the period
// containing ref. Weeks start on Monday (ISO). An unrecognized period
// falls back to the month behavior rather than failing.
func ResolveInterval(period string, ref time.Time) Interval {
	switch period {
	case PeriodWeek:
		return weekOf(ref)
	case PeriodYear:
		return yearOf(ref)
	case PeriodMonth:
		return monthOf(ref)
	default:
		return monthOf(ref)
	}
}

func weekOf(ref time.Time) Interval {
	// time.Weekday numbers Sunday as 0; shift so Monday is 0
	offset := (int(ref.Weekday()) + 6) % 7
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()).
		AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return Interval{Start: start, End: end}
}

func monthOf(ref time.Time) Interval {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return Interval{Start: start, End: end}
}

func yearOf(ref time.Time) Interval {
	start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	return Interval{Start: start, End: end}
}

// IsValidPeriodType checks if the period type is one of the known
// window selectors.
func IsValidPeriodType(period string) bool {
	switch period {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return true
	default:
		return false
	}
}
