package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wayfarer-app/wayfarer/internal/export"
)

// handleExportState handles GET /api/export.
// Serves the full state as a downloadable JSON document.
func (s *Server) handleExportState(w http.ResponseWriter, _ *http.Request) {
	raw, err := export.State(s.repo.State())
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="wayfarer-backup.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// handleExportTrip handles GET /api/trips/{tripID}/export.
func (s *Server) handleExportTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.repo.Trip(chi.URLParam(r, "tripID"))
	if err != nil {
		respondJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	raw, err := export.Trip(trip)
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "trip-"+trip.ID+".json"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

type importResponse struct {
	Kind  export.Kind `json:"kind"`
	Count int         `json:"count"`
}

// handleImport handles POST /api/import.
//
// The body can be a full-state backup or a single exported trip; the
// payload shape decides which. A full-state import replaces everything,
// so it is gated behind ?confirm=true and rejected with 409 otherwise.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody("could not read request body"))
		return
	}

	imp, err := export.Parse(raw)
	if err != nil {
		respondError(w, err)
		return
	}

	switch imp.Kind {
	case export.KindFullState:
		if r.URL.Query().Get("confirm") != "true" {
			respondJSON(w, http.StatusConflict, ErrorResponse{Error: ErrorDetail{
				Code:    "confirmation_required",
				Message: "importing a full backup replaces all existing trips; retry with ?confirm=true",
			}})
			return
		}
		s.repo.ImportFullState(imp.State)
		respondJSON(w, http.StatusOK, importResponse{Kind: imp.Kind, Count: len(imp.State.Trips)})
	case export.KindSingleTrip:
		s.repo.ImportSingleTrip(imp.Trip)
		respondJSON(w, http.StatusOK, importResponse{Kind: imp.Kind, Count: 1})
	default:
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{
			Code:    "parse_error",
			Message: "payload is neither a full backup nor a trip export",
		}})
	}
}
