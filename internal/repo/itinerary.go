package repo

import "github.com/wayfarer-app/wayfarer/internal/domain"

// rebuildItinerary recomputes a trip's day sequence for a new date range
// while preserving previously-entered activities.
//
// Activities are keyed by calendar date, not by day index: growing or
// shifting the range keeps each activity list attached to its original
// date, and dates that fall out of the new range are dropped together
// with their activities. Day indices are reassigned 1..N by position.
//
// Updating to the exact same range is a no-op in content: every new date
// finds its old activity list, so the result is identical to the input.
func rebuildItinerary(old []domain.Day, start, end domain.Date) []domain.Day {
	byDate := make(map[string][]domain.Activity, len(old))
	for _, d := range old {
		byDate[d.Date] = d.Activities
	}

	days := domain.ExpandRange(start, end)
	for i := range days {
		if acts, ok := byDate[days[i].Date]; ok && acts != nil {
			days[i].Activities = acts
		}
	}
	return days
}
