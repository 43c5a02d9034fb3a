package repo

import (
	"fmt"

	"github.com/wayfarer-app/wayfarer/internal/domain"
)

// AddStay appends a lodging booking to the trip's stays and returns it
// with a freshly assigned id. Stays are trip-scoped: which days they
// cover is computed from their dates at read time, never stored.
// Returns domain.ErrNotFound for an unknown trip, domain.ErrValidation
// for a negative cost.
func (r *Repository) AddStay(tripID string, stay domain.Stay) (domain.Stay, error) {
	if stay.Cost < 0 {
		return domain.Stay{}, fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.tripIndex(tripID)
	if i < 0 {
		return domain.Stay{}, fmt.Errorf("repo.Repository.AddStay: %w", domain.ErrNotFound)
	}

	stay.ID = domain.NewID()
	if stay.Attachments == nil {
		stay.Attachments = []domain.Attachment{}
	}
	r.state.Trips[i].Stays = append(r.state.Trips[i].Stays, stay)
	r.flush()
	return stay, nil
}

// UpdateStay replaces the stay matching stay.ID in place. A missing stay
// id is a silent no-op; only an unknown trip is an error.
func (r *Repository) UpdateStay(tripID string, stay domain.Stay) error {
	if stay.Cost < 0 {
		return fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.tripIndex(tripID)
	if i < 0 {
		return fmt.Errorf("repo.Repository.UpdateStay: %w", domain.ErrNotFound)
	}

	if stay.Attachments == nil {
		stay.Attachments = []domain.Attachment{}
	}
	stays := r.state.Trips[i].Stays
	for j := range stays {
		if stays[j].ID == stay.ID {
			stays[j] = stay
			r.flush()
			return nil
		}
	}
	return nil
}

// DeleteStay removes the stay with stayID. A missing stay id is a silent
// no-op.
func (r *Repository) DeleteStay(tripID, stayID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.tripIndex(tripID)
	if i < 0 {
		return fmt.Errorf("repo.Repository.DeleteStay: %w", domain.ErrNotFound)
	}

	stays := r.state.Trips[i].Stays
	for j := range stays {
		if stays[j].ID == stayID {
			r.state.Trips[i].Stays = append(stays[:j], stays[j+1:]...)
			r.flush()
			return nil
		}
	}
	return nil
}

// AddTransport appends a travel booking to the trip's transports and
// returns it with a freshly assigned id. Like stays, transports are
// trip-scoped with day membership computed from their dates.
func (r *Repository) AddTransport(tripID string, tr domain.Transport) (domain.Transport, error) {
	if tr.Cost < 0 {
		return domain.Transport{}, fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.tripIndex(tripID)
	if i < 0 {
		return domain.Transport{}, fmt.Errorf("repo.Repository.AddTransport: %w", domain.ErrNotFound)
	}

	tr.ID = domain.NewID()
	if tr.Attachments == nil {
		tr.Attachments = []domain.Attachment{}
	}
	r.state.Trips[i].Transports = append(r.state.Trips[i].Transports, tr)
	r.flush()
	return tr, nil
}

// UpdateTransport replaces the transport matching tr.ID in place.
// A missing transport id is a silent no-op.
func (r *Repository) UpdateTransport(tripID string, tr domain.Transport) error {
	if tr.Cost < 0 {
		return fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.tripIndex(tripID)
	if i < 0 {
		return fmt.Errorf("repo.Repository.UpdateTransport: %w", domain.ErrNotFound)
	}

	if tr.Attachments == nil {
		tr.Attachments = []domain.Attachment{}
	}
	transports := r.state.Trips[i].Transports
	for j := range transports {
		if transports[j].ID == tr.ID {
			transports[j] = tr
			r.flush()
			return nil
		}
	}
	return nil
}

// DeleteTransport removes the transport with transportID. A missing
// transport id is a silent no-op.
func (r *Repository) DeleteTransport(tripID, transportID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.tripIndex(tripID)
	if i < 0 {
		return fmt.Errorf("repo.Repository.DeleteTransport: %w", domain.ErrNotFound)
	}

	transports := r.state.Trips[i].Transports
	for j := range transports {
		if transports[j].ID == transportID {
			r.state.Trips[i].Transports = append(transports[:j], transports[j+1:]...)
			r.flush()
			return nil
		}
	}
	return nil
}
