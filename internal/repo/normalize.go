package repo

import "github.com/wayfarer-app/wayfarer/internal/domain"

// normalizeState repairs an externally-sourced AppState so that it
// satisfies the aggregate invariants before the repository adopts it.
// A structurally valid state passes through unchanged, which keeps
// export→import round trips exact.
func normalizeState(s *domain.AppState) {
	if s.Trips == nil {
		s.Trips = []domain.Trip{}
	}
	for i := range s.Trips {
		normalizeTrip(&s.Trips[i])
	}
	// The active reference is weak: drop it if it no longer resolves.
	if s.ActiveTripID != nil {
		found := false
		for i := range s.Trips {
			if s.Trips[i].ID == *s.ActiveTripID {
				found = true
				break
			}
		}
		if !found {
			s.ActiveTripID = nil
		}
	}
}

// normalizeTrip repairs a single trip in place:
//   - missing ids (trip and every nested entity) are assigned fresh,
//   - unknown enum values map to their fallback (Other / planning),
//   - negative costs and budget totals clamp to 0,
//   - nil collections become empty so JSON round trips as [] not null,
//   - the day sequence is rebuilt — preserving activities by calendar
//     date — when it does not match the trip's date range.
func normalizeTrip(t *domain.Trip) {
	if t.ID == "" {
		t.ID = domain.NewID()
	}
	t.Status = domain.ParseTripStatus(string(t.Status))
	t.BannerPosition = clampInt(t.BannerPosition, 0, 100)
	if t.Budget.Total < 0 {
		t.Budget.Total = 0
	}

	if t.DailyItinerary == nil {
		t.DailyItinerary = []domain.Day{}
	}
	for i := range t.DailyItinerary {
		day := &t.DailyItinerary[i]
		if day.Activities == nil {
			day.Activities = []domain.Activity{}
		}
		for j := range day.Activities {
			normalizeActivity(&day.Activities[j])
		}
	}

	if t.Stays == nil {
		t.Stays = []domain.Stay{}
	}
	for i := range t.Stays {
		if t.Stays[i].ID == "" {
			t.Stays[i].ID = domain.NewID()
		}
		if t.Stays[i].Cost < 0 {
			t.Stays[i].Cost = 0
		}
		if t.Stays[i].Attachments == nil {
			t.Stays[i].Attachments = []domain.Attachment{}
		}
	}

	if t.Transports == nil {
		t.Transports = []domain.Transport{}
	}
	for i := range t.Transports {
		if t.Transports[i].ID == "" {
			t.Transports[i].ID = domain.NewID()
		}
		if t.Transports[i].Cost < 0 {
			t.Transports[i].Cost = 0
		}
		if t.Transports[i].Attachments == nil {
			t.Transports[i].Attachments = []domain.Attachment{}
		}
	}

	if t.Checklist == nil {
		t.Checklist = []domain.ChecklistItem{}
	}
	for i := range t.Checklist {
		if t.Checklist[i].ID == "" {
			t.Checklist[i].ID = domain.NewID()
		}
	}

	repairItinerary(t)
}

func normalizeActivity(a *domain.Activity) {
	if a.ID == "" {
		a.ID = domain.NewID()
	}
	a.Type = domain.ParseActivityType(string(a.Type))
	if a.Cost < 0 {
		a.Cost = 0
	}
}

// repairItinerary rebuilds the day sequence when it violates the
// contiguity invariant: one day per calendar date in [start, end],
// ascending and gapless, indices 1..N. Trips whose dates do not parse
// are left alone — there is no range to repair against.
func repairItinerary(t *domain.Trip) {
	start, err := domain.ParseDate(t.StartDate)
	if err != nil {
		return
	}
	end, err := domain.ParseDate(t.EndDate)
	if err != nil {
		return
	}

	expected := domain.ExpandRange(start, end)
	if len(t.DailyItinerary) == len(expected) {
		intact := true
		for i := range expected {
			if t.DailyItinerary[i].Date != expected[i].Date || t.DailyItinerary[i].Day != expected[i].Day {
				intact = false
				break
			}
		}
		if intact {
			return
		}
	}
	t.DailyItinerary = rebuildItinerary(t.DailyItinerary, start, end)
}
