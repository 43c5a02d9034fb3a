// Package store contains the durable persistence adapters for the
// application state. Two drivers are provided: a single JSON file with
// atomic replace semantics, and a SQLite database holding the state as
// one JSON-encoded row. Both expose the same Store surface and both
// guarantee that the application always starts from a valid state.
package store

import "github.com/wayfarer-app/wayfarer/internal/domain"

// Store loads and saves the full application state. Save must be atomic
// from the caller's perspective: a crash mid-write may lose the write
// in flight but must never corrupt the previously stored state.
type Store interface {
	// Load returns the persisted state, or the built-in seed state when
	// nothing is stored yet or the stored content cannot be decoded.
	Load() (domain.AppState, error)

	// Save persists the full state, replacing whatever was stored.
	Save(state domain.AppState) error
}
