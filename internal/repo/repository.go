// Package repo implements the in-memory trip repository: the single
// owner of the application state and the only place it is mutated.
// Every operation fully applies before returning, and each successful
// mutation is flushed to the injected Saver. No HTTP or storage code
// lives here.
package repo

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/wayfarer-app/wayfarer/internal/domain"
)

// Saver persists the full application state after a mutation.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets tests
// inject a recording fake instead of a real store.
type Saver interface {
	Save(state domain.AppState) error
}

// Repository owns the AppState. All access goes through its method
// surface; reads hand out deep copies so callers can never mutate the
// owned state, and a mutex serialises concurrent HTTP handlers even
// though the logical model is single-writer.
type Repository struct {
	mu    sync.Mutex
	state domain.AppState
	saver Saver
	log   *slog.Logger
}

// New constructs a Repository seeded with initial (normally the state
// loaded by the store at startup). saver may be nil, in which case
// mutations are kept in memory only — useful in tests.
func New(initial domain.AppState, saver Saver, log *slog.Logger) *Repository {
	if log == nil {
		log = slog.Default()
	}
	normalizeState(&initial)
	return &Repository{state: initial, saver: saver, log: log}
}

// flush writes the current state through the Saver. Persistence is
// local-first: the in-memory mutation has already happened, so a failed
// flush is logged and the next mutation retries a full write anyway.
// Callers must hold r.mu.
func (r *Repository) flush() {
	if r.saver == nil {
		return
	}
	if err := r.saver.Save(r.state.Clone()); err != nil {
		r.log.Error("state flush failed", "error", err)
	}
}

// State returns a deep copy of the full application state.
func (r *Repository) State() domain.AppState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Clone()
}

// Trip returns a deep copy of a single trip by id.
// Returns domain.ErrNotFound if no trip with that id exists.
func (r *Repository) Trip(id string) (domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.tripIndex(id)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("repo.Repository.Trip: %w", domain.ErrNotFound)
	}
	return r.state.Trips[i].Clone(), nil
}

// CreateTripInput carries the caller-supplied fields for a new trip.
// Everything else is defaulted by CreateTrip.
type CreateTripInput struct {
	Title      string
	StartDate  string
	EndDate    string
	CoverImage string
}

// defaultBudgetTotal is the starting budget assigned to every new trip.
const defaultBudgetTotal = 2000

// CreateTrip validates input, assigns an id and defaults, expands the
// date range into the daily itinerary, and appends the trip.
// Returns domain.ErrValidation if the title is blank or either date is
// missing or unparseable; no state is mutated in that case.
func (r *Repository) CreateTrip(in CreateTripInput) (domain.Trip, error) {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Trip{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	start, err := domain.ParseDate(in.StartDate)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("%w: start date is required", domain.ErrValidation)
	}
	end, err := domain.ParseDate(in.EndDate)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("%w: end date is required", domain.ErrValidation)
	}

	trip := domain.Trip{
		ID:             domain.NewID(),
		Title:          in.Title,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Status:         domain.StatusPlanning,
		CoverImage:     in.CoverImage,
		BannerPosition: 50,
		DailyItinerary: domain.ExpandRange(start, end),
		Stays:          []domain.Stay{},
		Transports:     []domain.Transport{},
		Notes:          "",
		Budget:         domain.Budget{Total: defaultBudgetTotal},
		Checklist:      []domain.ChecklistItem{},
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Trips = append(r.state.Trips, trip)
	r.flush()
	return trip.Clone(), nil
}

// TripPatch is a partial update of a trip's top-level fields. Nil fields
// are left untouched (shallow merge). Nested collections have their own
// operations and cannot be patched here.
type TripPatch struct {
	Title          *string
	StartDate      *string
	EndDate        *string
	Status         *domain.TripStatus
	CoverImage     *string
	BannerPosition *int
	Notes          *string
	Budget         *domain.Budget
}

// UpdateTrip merges patch over the existing trip. When either date
// changes, the daily itinerary is rebuilt by the reconciler with
// activities preserved per calendar date (see rebuildItinerary).
//
// Returns domain.ErrNotFound for an unknown id. Returns
// domain.ErrValidation — without mutating anything — for a blank title,
// a negative budget total, or a date patch that leaves the trip with an
// unparseable start or end date.
func (r *Repository) UpdateTrip(id string, patch TripPatch) (domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.tripIndex(id)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("repo.Repository.UpdateTrip: %w", domain.ErrNotFound)
	}

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return domain.Trip{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if patch.Budget != nil && patch.Budget.Total < 0 {
		return domain.Trip{}, fmt.Errorf("%w: budget total must not be negative", domain.ErrValidation)
	}

	merged := r.state.Trips[i]

	datesChanged := patch.StartDate != nil || patch.EndDate != nil
	if patch.StartDate != nil {
		merged.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		merged.EndDate = *patch.EndDate
	}

	// Validate merged dates before touching state so a bad patch is
	// rejected loudly instead of silently skipping reconciliation.
	var start, end domain.Date
	if datesChanged {
		var err error
		if start, err = domain.ParseDate(merged.StartDate); err != nil {
			return domain.Trip{}, err
		}
		if end, err = domain.ParseDate(merged.EndDate); err != nil {
			return domain.Trip{}, err
		}
	}

	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Status != nil {
		merged.Status = domain.ParseTripStatus(string(*patch.Status))
	}
	if patch.CoverImage != nil {
		merged.CoverImage = *patch.CoverImage
	}
	if patch.BannerPosition != nil {
		merged.BannerPosition = clampInt(*patch.BannerPosition, 0, 100)
	}
	if patch.Notes != nil {
		merged.Notes = *patch.Notes
	}
	if patch.Budget != nil {
		merged.Budget = *patch.Budget
	}

	if datesChanged {
		merged.DailyItinerary = rebuildItinerary(merged.DailyItinerary, start, end)
	}

	r.state.Trips[i] = merged
	r.flush()
	return merged.Clone(), nil
}

// DeleteTrip removes a trip and everything nested under it. Deleting an
// unknown id is a no-op, so the operation is idempotent. If the deleted
// trip was active, the active-trip reference is cleared.
func (r *Repository) DeleteTrip(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.tripIndex(id)
	if i < 0 {
		return
	}
	r.state.Trips = append(r.state.Trips[:i], r.state.Trips[i+1:]...)
	if r.state.ActiveTripID != nil && *r.state.ActiveTripID == id {
		r.state.ActiveTripID = nil
	}
	r.flush()
}

// SetActiveTrip points the active-trip reference at the given trip, or
// clears it when id is nil. Returns domain.ErrNotFound when id does not
// reference an existing trip — a dangling active reference must never be
// stored.
func (r *Repository) SetActiveTrip(id *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id == nil {
		r.state.ActiveTripID = nil
		r.flush()
		return nil
	}
	if r.tripIndex(*id) < 0 {
		return fmt.Errorf("repo.Repository.SetActiveTrip: %w", domain.ErrNotFound)
	}
	v := *id
	r.state.ActiveTripID = &v
	r.flush()
	return nil
}

// UpdateNotes replaces the free-text notes of a trip.
// Returns domain.ErrNotFound for an unknown trip id.
func (r *Repository) UpdateNotes(tripID, notes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.tripIndex(tripID)
	if i < 0 {
		return fmt.Errorf("repo.Repository.UpdateNotes: %w", domain.ErrNotFound)
	}
	r.state.Trips[i].Notes = notes
	r.flush()
	return nil
}

// tripIndex returns the position of the trip with the given id, or -1.
// Callers must hold r.mu.
func (r *Repository) tripIndex(id string) int {
	for i := range r.state.Trips {
		if r.state.Trips[i].ID == id {
			return i
		}
	}
	return -1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
