// Package handler implements the HTTP handlers for the Wayfarer API.
// All handlers are methods on Server. Methods are split into
// domain-specific files (trip.go, activity.go, booking.go, …) but all
// share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wayfarer-app/wayfarer/internal/domain"
	"github.com/wayfarer-app/wayfarer/internal/repo"
)

// TripRepository defines the state operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching a real repository.
type TripRepository interface {
	State() domain.AppState
	Trip(id string) (domain.Trip, error)
	CreateTrip(in repo.CreateTripInput) (domain.Trip, error)
	UpdateTrip(id string, patch repo.TripPatch) (domain.Trip, error)
	DeleteTrip(id string)
	SetActiveTrip(id *string) error
	UpdateNotes(tripID, notes string) error

	AddActivity(tripID string, dayIndex int, act domain.Activity) (domain.Activity, error)
	UpdateActivity(tripID string, dayIndex int, act domain.Activity) error
	DeleteActivity(tripID string, dayIndex int, activityID string) error

	AddStay(tripID string, stay domain.Stay) (domain.Stay, error)
	UpdateStay(tripID string, stay domain.Stay) error
	DeleteStay(tripID, stayID string) error

	AddTransport(tripID string, tr domain.Transport) (domain.Transport, error)
	UpdateTransport(tripID string, tr domain.Transport) error
	DeleteTransport(tripID, transportID string) error

	AddChecklistItem(tripID, text string) (domain.ChecklistItem, error)
	SetChecklistItem(tripID, itemID string, completed bool) error

	ImportFullState(state domain.AppState)
	ImportSingleTrip(trip domain.Trip) domain.Trip
	MergeSuggestions(tripID string, days []domain.SuggestedDay) (domain.Trip, error)
}

// Suggester defines the external itinerary-suggestion operation.
// It is nil when no suggestion service is configured.
type Suggester interface {
	Itinerary(ctx context.Context, destination string, days int) ([]domain.SuggestedDay, error)
}

// Server implements every API endpoint. Wire it in main.go via Routes().
type Server struct {
	repo    TripRepository
	suggest Suggester
}

// NewServer constructs the Server with all its dependencies.
// suggest may be nil; the suggestion endpoint then returns 503.
func NewServer(repo TripRepository, suggest Suggester) *Server {
	return &Server{repo: repo, suggest: suggest}
}

// Routes builds the full route tree.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleGetState)
		r.Get("/export", s.handleExportState)
		r.Post("/import", s.handleImport)
		r.Put("/active-trip", s.handleSetActiveTrip)

		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.handleListTrips)
			r.Post("/", s.handleCreateTrip)

			r.Route("/{tripID}", func(r chi.Router) {
				r.Get("/", s.handleGetTrip)
				r.Patch("/", s.handleUpdateTrip)
				r.Delete("/", s.handleDeleteTrip)

				r.Get("/itinerary", s.handleItinerary)
				r.Get("/budget", s.handleBudget)
				r.Get("/export", s.handleExportTrip)
				r.Put("/notes", s.handleUpdateNotes)
				r.Post("/suggestions", s.handleSuggestions)

				r.Route("/days/{dayIndex}/activities", func(r chi.Router) {
					r.Post("/", s.handleAddActivity)
					r.Put("/{activityID}", s.handleUpdateActivity)
					r.Delete("/{activityID}", s.handleDeleteActivity)
				})

				r.Route("/stays", func(r chi.Router) {
					r.Post("/", s.handleAddStay)
					r.Put("/{stayID}", s.handleUpdateStay)
					r.Delete("/{stayID}", s.handleDeleteStay)
				})

				r.Route("/transports", func(r chi.Router) {
					r.Post("/", s.handleAddTransport)
					r.Put("/{transportID}", s.handleUpdateTransport)
					r.Delete("/{transportID}", s.handleDeleteTransport)
				})

				r.Route("/checklist", func(r chi.Router) {
					r.Post("/", s.handleAddChecklistItem)
					r.Patch("/{itemID}", s.handleSetChecklistItem)
				})
			})
		})
	})

	return r
}

// handleHealth responds 200 as long as the process is serving.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
