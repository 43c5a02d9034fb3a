package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wayfarer-app/wayfarer/internal/budget"
	"github.com/wayfarer-app/wayfarer/internal/domain"
	"github.com/wayfarer-app/wayfarer/internal/repo"
)

// handleGetState handles GET /api/state.
// Returns the whole application state in interchange shape.
func (s *Server) handleGetState(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.repo.State())
}

// handleListTrips handles GET /api/trips.
func (s *Server) handleListTrips(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.repo.State().Trips)
}

type createTripRequest struct {
	Title      string `json:"title"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	CoverImage string `json:"coverImage"`
}

// handleCreateTrip handles POST /api/trips.
func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}

	created, err := s.repo.CreateTrip(repo.CreateTripInput{
		Title:      req.Title,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		CoverImage: req.CoverImage,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// handleGetTrip handles GET /api/trips/{tripID}.
func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.repo.Trip(chi.URLParam(r, "tripID"))
	if err != nil {
		respondJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

type updateTripRequest struct {
	Title          *string        `json:"title"`
	StartDate      *string        `json:"startDate"`
	EndDate        *string        `json:"endDate"`
	Status         *string        `json:"status"`
	CoverImage     *string        `json:"coverImage"`
	BannerPosition *int           `json:"bannerPosition"`
	Notes          *string        `json:"notes"`
	Budget         *domain.Budget `json:"budget"`
}

// handleUpdateTrip handles PATCH /api/trips/{tripID}.
// Absent fields are left untouched; present fields overwrite.
func (s *Server) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req updateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}

	patch := repo.TripPatch{
		Title:          req.Title,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		CoverImage:     req.CoverImage,
		BannerPosition: req.BannerPosition,
		Notes:          req.Notes,
		Budget:         req.Budget,
	}
	if req.Status != nil {
		st := domain.ParseTripStatus(*req.Status)
		patch.Status = &st
	}

	updated, err := s.repo.UpdateTrip(chi.URLParam(r, "tripID"), patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// handleDeleteTrip handles DELETE /api/trips/{tripID}.
// Deleting is idempotent, so an unknown id still yields 204.
func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	s.repo.DeleteTrip(chi.URLParam(r, "tripID"))
	w.WriteHeader(http.StatusNoContent)
}

type setActiveTripRequest struct {
	ID *string `json:"id"`
}

// handleSetActiveTrip handles PUT /api/active-trip.
// A null id clears the active selection.
func (s *Server) handleSetActiveTrip(w http.ResponseWriter, r *http.Request) {
	var req setActiveTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}

	if err := s.repo.SetActiveTrip(req.ID); err != nil {
		respondJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	respondJSON(w, http.StatusOK, s.repo.State())
}

type updateNotesRequest struct {
	Notes string `json:"notes"`
}

// handleUpdateNotes handles PUT /api/trips/{tripID}/notes.
func (s *Server) handleUpdateNotes(w http.ResponseWriter, r *http.Request) {
	var req updateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}

	tripID := chi.URLParam(r, "tripID")
	if err := s.repo.UpdateNotes(tripID, req.Notes); err != nil {
		respondJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	trip, err := s.repo.Trip(tripID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// handleBudget handles GET /api/trips/{tripID}/budget.
func (s *Server) handleBudget(w http.ResponseWriter, r *http.Request) {
	trip, err := s.repo.Trip(chi.URLParam(r, "tripID"))
	if err != nil {
		respondJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}
	respondJSON(w, http.StatusOK, budget.Summarize(trip))
}
