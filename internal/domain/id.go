package domain

import "github.com/google/uuid"

// NewID returns a fresh opaque entity identifier.
//
// Random UUIDs make collisions negligible both within one process and
// against entities created independently elsewhere, which matters because
// single-trip import merges externally-generated ids into local state.
func NewID() string {
	return uuid.NewString()
}
