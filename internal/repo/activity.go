package repo

import (
	"fmt"

	"github.com/wayfarer-app/wayfarer/internal/domain"
)

// AddActivity appends an activity to the day at dayIndex (0-based
// position in the daily itinerary) and returns it with a freshly
// assigned id; any id on the input is ignored.
// Returns domain.ErrNotFound if the trip or day index is invalid,
// domain.ErrValidation for a negative cost.
func (r *Repository) AddActivity(tripID string, dayIndex int, act domain.Activity) (domain.Activity, error) {
	if act.Cost < 0 {
		return domain.Activity{}, fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	day, err := r.day(tripID, dayIndex)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.Repository.AddActivity: %w", err)
	}

	act.ID = domain.NewID()
	act.Type = domain.ParseActivityType(string(act.Type))
	day.Activities = append(day.Activities, act)
	r.flush()
	return act, nil
}

// UpdateActivity replaces the activity matching act.ID within the given
// day, preserving its position. A missing activity id is a silent no-op;
// only an invalid trip or day index is an error.
func (r *Repository) UpdateActivity(tripID string, dayIndex int, act domain.Activity) error {
	if act.Cost < 0 {
		return fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	day, err := r.day(tripID, dayIndex)
	if err != nil {
		return fmt.Errorf("repo.Repository.UpdateActivity: %w", err)
	}

	for i := range day.Activities {
		if day.Activities[i].ID == act.ID {
			act.Type = domain.ParseActivityType(string(act.Type))
			day.Activities[i] = act
			r.flush()
			return nil
		}
	}
	return nil
}

// DeleteActivity removes the activity with activityID from the given
// day. A missing activity id is a silent no-op.
func (r *Repository) DeleteActivity(tripID string, dayIndex int, activityID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	day, err := r.day(tripID, dayIndex)
	if err != nil {
		return fmt.Errorf("repo.Repository.DeleteActivity: %w", err)
	}

	for i := range day.Activities {
		if day.Activities[i].ID == activityID {
			day.Activities = append(day.Activities[:i], day.Activities[i+1:]...)
			r.flush()
			return nil
		}
	}
	return nil
}

// day returns a pointer into the owned state for the day at dayIndex of
// the given trip. Callers must hold r.mu.
func (r *Repository) day(tripID string, dayIndex int) (*domain.Day, error) {
	i := r.tripIndex(tripID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	trip := &r.state.Trips[i]
	if dayIndex < 0 || dayIndex >= len(trip.DailyItinerary) {
		return nil, fmt.Errorf("day index %d: %w", dayIndex, domain.ErrNotFound)
	}
	return &trip.DailyItinerary[dayIndex], nil
}
