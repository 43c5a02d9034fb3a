package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wayfarer-app/wayfarer/internal/domain"
)

// DayView is a daily-itinerary entry enriched with the stays and
// transports that fall on that calendar date. The associations are
// computed per request, never stored.
type DayView struct {
	domain.Day
	Stays      []domain.Stay      `json:"stays"`
	Transports []domain.Transport `json:"transports"`
}

// handleItinerary handles GET /api/trips/{tripID}/itinerary.
func (s *Server) handleItinerary(w http.ResponseWriter, r *http.Request) {
	trip, err := s.repo.Trip(chi.URLParam(r, "tripID"))
	if err != nil {
		respondJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
		return
	}

	days := make([]DayView, len(trip.DailyItinerary))
	for i, d := range trip.DailyItinerary {
		days[i] = DayView{
			Day:        d,
			Stays:      trip.StaysOn(d.Date),
			Transports: trip.TransportsOn(d.Date),
		}
	}
	respondJSON(w, http.StatusOK, days)
}

// dayIndex parses the {dayIndex} path parameter as a zero-based index.
func dayIndex(r *http.Request) (int, bool) {
	idx, err := strconv.Atoi(chi.URLParam(r, "dayIndex"))
	if err != nil {
		return 0, false
	}
	return idx, true
}

// handleAddActivity handles POST /api/trips/{tripID}/days/{dayIndex}/activities.
func (s *Server) handleAddActivity(w http.ResponseWriter, r *http.Request) {
	idx, ok := dayIndex(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, requestBody("day index must be an integer"))
		return
	}
	var act domain.Activity
	if err := json.NewDecoder(r.Body).Decode(&act); err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}

	created, err := s.repo.AddActivity(chi.URLParam(r, "tripID"), idx, act)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// handleUpdateActivity handles PUT /api/trips/{tripID}/days/{dayIndex}/activities/{activityID}.
func (s *Server) handleUpdateActivity(w http.ResponseWriter, r *http.Request) {
	idx, ok := dayIndex(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, requestBody("day index must be an integer"))
		return
	}
	var act domain.Activity
	if err := json.NewDecoder(r.Body).Decode(&act); err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}
	act.ID = chi.URLParam(r, "activityID")

	if err := s.repo.UpdateActivity(chi.URLParam(r, "tripID"), idx, act); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, act)
}

// handleDeleteActivity handles DELETE /api/trips/{tripID}/days/{dayIndex}/activities/{activityID}.
func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	idx, ok := dayIndex(r)
	if !ok {
		respondJSON(w, http.StatusBadRequest, requestBody("day index must be an integer"))
		return
	}
	if err := s.repo.DeleteActivity(chi.URLParam(r, "tripID"), idx, chi.URLParam(r, "activityID")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
