package store

import "github.com/wayfarer-app/wayfarer/internal/domain"

// Seed returns the built-in first-run state: one example trip so a new
// install never opens onto an empty screen, and no active trip.
func Seed() domain.AppState {
	start, _ := domain.ParseDate("2026-05-19")
	end, _ := domain.ParseDate("2026-05-26")

	trip := domain.Trip{
		ID:             "preview-trip",
		Title:          "US Trip 2026",
		StartDate:      "2026-05-19",
		EndDate:        "2026-05-26",
		Status:         domain.StatusPlanning,
		CoverImage:     "https://images.unsplash.com/photo-1508433957232-31d15fe4a3ba?auto=format&fit=crop&w=1200&q=80",
		BannerPosition: 50,
		DailyItinerary: domain.ExpandRange(start, end),
		Stays:          []domain.Stay{},
		Transports:     []domain.Transport{},
		Notes:          "Exciting US road trip!",
		Budget:         domain.Budget{Total: 5000},
		Checklist:      []domain.ChecklistItem{},
	}

	return domain.AppState{Trips: []domain.Trip{trip}, ActiveTripID: nil}
}
