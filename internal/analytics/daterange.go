package analytics

import (
	"fmt"
	"time"

	apperrors "budgetly/internal/errors"
)

// DateRange is an inclusive window of calendar dates. A nil bound leaves
// that side open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// DateOf truncates t to its calendar date at UTC midnight. The year, month
// and day are taken from t's own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewDateRange builds a range from optional bounds, dropping any
// time-of-day component.
func NewDateRange(start, end *time.Time) DateRange {
	var r DateRange
	if start != nil {
		s := DateOf(*start)
		r.Start = &s
	}
	if end != nil {
		e := DateOf(*end)
		r.End = &e
	}
	return r
}

// IsEmpty reports whether no date can satisfy the range (Start after End).
func (r DateRange) IsEmpty() bool {
	return r.Start != nil && r.End != nil && DateOf(*r.Start).After(DateOf(*r.End))
}

// Contains reports whether the calendar date of t lies within the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.IsEmpty() {
		return false
	}
	d := DateOf(t)
	if r.Start != nil && d.Before(DateOf(*r.Start)) {
		return false
	}
	if r.End != nil && d.After(DateOf(*r.End)) {
		return false
	}
	return true
}

// MonthSpan returns the first through last calendar day of the given month.
// It fails on a month outside 1..12 instead of normalising it.
func MonthSpan(month, year int) (DateRange, error) {
	if month < 1 || month > 12 {
		return DateRange{}, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("month must be between 1 and 12, got %d", month))
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return DateRange{Start: &start, End: &end}, nil
}
