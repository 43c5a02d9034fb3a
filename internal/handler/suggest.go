package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wayfarer-app/wayfarer/internal/domain"
)

type suggestionsRequest struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
}

// handleSuggestions handles POST /api/trips/{tripID}/suggestions.
//
// Fetches a generated itinerary for the destination from the external
// suggestion service and merges it into the trip's existing days. The
// response payload from the service is treated as untrusted; the
// repository re-validates every merged activity.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	if s.suggest == nil {
		respondJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: ErrorDetail{
			Code:    "not_configured",
			Message: "no suggestion service is configured",
		}})
		return
	}

	var req suggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}

	tripID := chi.URLParam(r, "tripID")
	trip, err := s.repo.Trip(tripID)
	if err != nil {
		respondJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	if req.Days <= 0 {
		req.Days = len(trip.DailyItinerary)
	}

	days, err := s.suggest.Itinerary(r.Context(), req.Destination, req.Days)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		respondJSON(w, http.StatusBadGateway, ErrorResponse{Error: ErrorDetail{
			Code:    "upstream_error",
			Message: "suggestion service request failed",
		}})
		return
	}

	merged, err := s.repo.MergeSuggestions(tripID, days)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, merged)
}
