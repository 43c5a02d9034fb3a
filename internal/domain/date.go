package domain

import (
	"fmt"
	"time"
)

// dateLayout is the wire format for all calendar dates: ISO 8601 date only.
const dateLayout = "2006-01-02"

// Date is a timezone-naive calendar date. It deliberately carries no
// time-of-day component: all arithmetic is in whole calendar days, so a
// range never gains or loses a day across DST transitions the way
// timestamp-based arithmetic can.
type Date struct {
	t time.Time
}

// ParseDate parses an ISO calendar date ("2026-05-19").
// Returns ErrValidation (wrapped) for anything that is not a valid date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: invalid date %q", ErrValidation, s)
	}
	return Date{t: t}, nil
}

// String formats the date in the wire layout.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// AddDays returns the date n whole calendar days later (earlier for
// negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the signed number of whole days from d to other.
// Both dates parse to midnight UTC, so the division is always exact.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// ExpandRange produces one Day per calendar day in [start, end] inclusive,
// indexed 1..N and dated ascending from start.
//
// A range with end before start degrades to a single day rather than
// failing; the caller is expected to have validated the individual dates
// already, and a one-day itinerary is always a valid aggregate.
func ExpandRange(start, end Date) []Day {
	count := start.DaysUntil(end) + 1
	if count < 1 {
		count = 1
	}
	days := make([]Day, count)
	for i := range days {
		days[i] = Day{
			Day:        i + 1,
			Date:       start.AddDays(i).String(),
			Activities: []Activity{},
		}
	}
	return days
}
