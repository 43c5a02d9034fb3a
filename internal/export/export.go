// Package export produces and classifies the JSON interchange files used
// for manual backup and restore. The wire shapes are the domain types
// verbatim: a single-trip file is one Trip object, a full backup is the
// persisted AppState layout.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/wayfarer-app/wayfarer/internal/domain"
)

// Kind classifies an import payload by shape.
type Kind string

const (
	// KindFullState is a full backup: an object with a "trips" field.
	// Importing it is destructive and requires caller confirmation.
	KindFullState Kind = "fullState"
	// KindSingleTrip is one exported trip: an object with both "id" and
	// "dailyItinerary" fields. Importing it is a non-destructive upsert.
	KindSingleTrip Kind = "singleTrip"
	// KindInvalid is anything else.
	KindInvalid Kind = "invalid"
)

// Import is the classified result of parsing an uploaded file.
// Exactly one of State/Trip is meaningful, selected by Kind.
type Import struct {
	Kind  Kind
	State domain.AppState
	Trip  domain.Trip
}

// Trip encodes a single trip as an interchange document.
func Trip(t domain.Trip) ([]byte, error) {
	raw, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export.Trip: %w", err)
	}
	return raw, nil
}

// State encodes the full application state as a backup document,
// identical in shape to the durable-store layout.
func State(s domain.AppState) ([]byte, error) {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export.State: %w", err)
	}
	return raw, nil
}

// Parse classifies raw import bytes and decodes them into the matching
// type. Classification is purely structural: a "trips" key means a full
// backup, "id" plus "dailyItinerary" means a single trip, anything else
// is invalid. All failures wrap domain.ErrParse so callers can report a
// format error without inspecting details.
func Parse(raw []byte) (Import, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Import{Kind: KindInvalid}, fmt.Errorf("export.Parse: %w: not a JSON object", domain.ErrParse)
	}

	if _, ok := probe["trips"]; ok {
		var state domain.AppState
		if err := json.Unmarshal(raw, &state); err != nil {
			return Import{Kind: KindInvalid}, fmt.Errorf("export.Parse: %w: malformed full-state backup", domain.ErrParse)
		}
		return Import{Kind: KindFullState, State: state}, nil
	}

	_, hasID := probe["id"]
	_, hasItinerary := probe["dailyItinerary"]
	if hasID && hasItinerary {
		var trip domain.Trip
		if err := json.Unmarshal(raw, &trip); err != nil {
			return Import{Kind: KindInvalid}, fmt.Errorf("export.Parse: %w: malformed trip export", domain.ErrParse)
		}
		return Import{Kind: KindSingleTrip, Trip: trip}, nil
	}

	return Import{Kind: KindInvalid}, fmt.Errorf("export.Parse: %w: unrecognised shape", domain.ErrParse)
}
