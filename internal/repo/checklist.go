package repo

import (
	"fmt"
	"strings"

	"github.com/wayfarer-app/wayfarer/internal/domain"
)

// AddChecklistItem appends a new unchecked item to the trip's packing
// checklist and returns it.
// Returns domain.ErrNotFound for an unknown trip, domain.ErrValidation
// for a blank item text.
func (r *Repository) AddChecklistItem(tripID, text string) (domain.ChecklistItem, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ChecklistItem{}, fmt.Errorf("%w: item text is required", domain.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.tripIndex(tripID)
	if i < 0 {
		return domain.ChecklistItem{}, fmt.Errorf("repo.Repository.AddChecklistItem: %w", domain.ErrNotFound)
	}

	item := domain.ChecklistItem{ID: domain.NewID(), Item: text, Completed: false}
	r.state.Trips[i].Checklist = append(r.state.Trips[i].Checklist, item)
	r.flush()
	return item, nil
}

// SetChecklistItem sets the completed flag of a checklist item.
// A missing item id is a silent no-op; only an unknown trip is an error.
func (r *Repository) SetChecklistItem(tripID, itemID string, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.tripIndex(tripID)
	if i < 0 {
		return fmt.Errorf("repo.Repository.SetChecklistItem: %w", domain.ErrNotFound)
	}

	checklist := r.state.Trips[i].Checklist
	for j := range checklist {
		if checklist[j].ID == itemID {
			checklist[j].Completed = completed
			r.flush()
			return nil
		}
	}
	return nil
}
