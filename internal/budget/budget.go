// Package budget computes read-side spend summaries for a trip.
// It never mutates the aggregate; callers pass a snapshot.
package budget

import "github.com/wayfarer-app/wayfarer/internal/domain"

// Summary is the spend breakdown for one trip.
// ByCategory omits categories with zero spend; Remaining goes negative
// when the trip is over budget — callers decide how to surface that.
type Summary struct {
	BudgetTotal float64                         `json:"budgetTotal"`
	TotalSpent  float64                         `json:"totalSpent"`
	Remaining   float64                         `json:"remaining"`
	ByCategory  map[domain.ActivityType]float64 `json:"byCategory"`
}

// Summarize sums activity costs across every day of the itinerary,
// grouped by activity type. Every known category is evaluated before
// zero-spend entries are filtered out, so a category can never be missed
// merely because no activity currently carries it.
func Summarize(trip domain.Trip) Summary {
	totals := make(map[domain.ActivityType]float64, len(domain.ActivityTypes()))
	for _, at := range domain.ActivityTypes() {
		totals[at] = 0
	}

	for _, day := range trip.DailyItinerary {
		for _, act := range day.Activities {
			totals[act.Type] += act.Cost
		}
	}

	s := Summary{
		BudgetTotal: trip.Budget.Total,
		ByCategory:  make(map[domain.ActivityType]float64),
	}
	for at, total := range totals {
		s.TotalSpent += total
		if total > 0 {
			s.ByCategory[at] = total
		}
	}
	s.Remaining = trip.Budget.Total - s.TotalSpent
	return s
}
