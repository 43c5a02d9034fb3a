package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wayfarer-app/wayfarer/internal/domain"
)

// handleAddStay handles POST /api/trips/{tripID}/stays.
func (s *Server) handleAddStay(w http.ResponseWriter, r *http.Request) {
	var stay domain.Stay
	if err := json.NewDecoder(r.Body).Decode(&stay); err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}

	created, err := s.repo.AddStay(chi.URLParam(r, "tripID"), stay)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// handleUpdateStay handles PUT /api/trips/{tripID}/stays/{stayID}.
func (s *Server) handleUpdateStay(w http.ResponseWriter, r *http.Request) {
	var stay domain.Stay
	if err := json.NewDecoder(r.Body).Decode(&stay); err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}
	stay.ID = chi.URLParam(r, "stayID")

	if err := s.repo.UpdateStay(chi.URLParam(r, "tripID"), stay); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stay)
}

// handleDeleteStay handles DELETE /api/trips/{tripID}/stays/{stayID}.
func (s *Server) handleDeleteStay(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.DeleteStay(chi.URLParam(r, "tripID"), chi.URLParam(r, "stayID")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAddTransport handles POST /api/trips/{tripID}/transports.
func (s *Server) handleAddTransport(w http.ResponseWriter, r *http.Request) {
	var tr domain.Transport
	if err := json.NewDecoder(r.Body).Decode(&tr); err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}

	created, err := s.repo.AddTransport(chi.URLParam(r, "tripID"), tr)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// handleUpdateTransport handles PUT /api/trips/{tripID}/transports/{transportID}.
func (s *Server) handleUpdateTransport(w http.ResponseWriter, r *http.Request) {
	var tr domain.Transport
	if err := json.NewDecoder(r.Body).Decode(&tr); err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}
	tr.ID = chi.URLParam(r, "transportID")

	if err := s.repo.UpdateTransport(chi.URLParam(r, "tripID"), tr); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tr)
}

// handleDeleteTransport handles DELETE /api/trips/{tripID}/transports/{transportID}.
func (s *Server) handleDeleteTransport(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.DeleteTransport(chi.URLParam(r, "tripID"), chi.URLParam(r, "transportID")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addChecklistItemRequest struct {
	Item string `json:"item"`
}

// handleAddChecklistItem handles POST /api/trips/{tripID}/checklist.
func (s *Server) handleAddChecklistItem(w http.ResponseWriter, r *http.Request) {
	var req addChecklistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}

	item, err := s.repo.AddChecklistItem(chi.URLParam(r, "tripID"), req.Item)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

type setChecklistItemRequest struct {
	Completed bool `json:"completed"`
}

// handleSetChecklistItem handles PATCH /api/trips/{tripID}/checklist/{itemID}.
func (s *Server) handleSetChecklistItem(w http.ResponseWriter, r *http.Request) {
	var req setChecklistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}

	tripID := chi.URLParam(r, "tripID")
	if err := s.repo.SetChecklistItem(tripID, chi.URLParam(r, "itemID"), req.Completed); err != nil {
		respondError(w, err)
		return
	}
	trip, err := s.repo.Trip(tripID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trip.Checklist)
}
