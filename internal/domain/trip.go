// Package domain contains the core data types for the Wayfarer travel
// planner. This package has no dependencies on the rest of the module and
// is imported by every other internal package (repo, store, handler).
//
// JSON field names on these types are the interchange format: the same
// encoding is used for durable storage, full-state backups, and
// single-trip export files.
package domain

// TripStatus is the caller-set lifecycle marker of a trip. The core never
// derives it from dates.
type TripStatus string

const (
	StatusPlanning  TripStatus = "planning"
	StatusOngoing   TripStatus = "ongoing"
	StatusCompleted TripStatus = "completed"
)

// ParseTripStatus maps a free-form string to a known status, defaulting
// unknown values to planning.
func ParseTripStatus(s string) TripStatus {
	switch TripStatus(s) {
	case StatusPlanning, StatusOngoing, StatusCompleted:
		return TripStatus(s)
	}
	return StatusPlanning
}

// Budget holds the caller-editable total budget for a trip. Spend is
// always computed from activity costs, never stored.
type Budget struct {
	Total float64 `json:"total"`
}

// ChecklistItem is one entry of a trip's packing checklist.
type ChecklistItem struct {
	ID        string `json:"id"`
	Item      string `json:"item"`
	Completed bool   `json:"completed"`
}

// Day is one calendar date within a trip's range. Day is the 1-based
// position in the itinerary and is recomputed whenever the range changes;
// it is never authoritative on its own.
type Day struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

// Trip is the root aggregate: a date range of days, the bookings and
// checklist attached to it, and a budget.
//
// Invariants maintained by the repository:
//   - ID is immutable after creation and unique among trips.
//   - DailyItinerary always covers [StartDate, EndDate] inclusive with
//     contiguous ascending dates and 1-based day indices.
type Trip struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	Status         TripStatus      `json:"status"`
	CoverImage     string          `json:"coverImage"`
	BannerPosition int             `json:"bannerPosition"`
	DailyItinerary []Day           `json:"dailyItinerary"`
	Stays          []Stay          `json:"stays"`
	Transports     []Transport     `json:"transports"`
	Notes          string          `json:"notes"`
	Budget         Budget          `json:"budget"`
	Checklist      []ChecklistItem `json:"checklist"`
}

// StaysOn returns the stays whose [CheckIn, CheckOut] range covers date,
// both endpoints inclusive. Stays with unparseable dates never match.
func (t Trip) StaysOn(date string) []Stay {
	d, err := ParseDate(date)
	if err != nil {
		return []Stay{}
	}
	matches := []Stay{}
	for _, s := range t.Stays {
		in, err := ParseDate(s.CheckIn)
		if err != nil {
			continue
		}
		out, err := ParseDate(s.CheckOut)
		if err != nil {
			continue
		}
		if !d.Before(in) && !d.After(out) {
			matches = append(matches, s)
		}
	}
	return matches
}

// TransportsOn returns the transports departing or arriving on date.
// Matching is by exact date string, mirroring how the dates are entered.
func (t Trip) TransportsOn(date string) []Transport {
	matches := []Transport{}
	for _, tr := range t.Transports {
		if tr.DepartureDate == date || tr.ArrivalDate == date {
			matches = append(matches, tr)
		}
	}
	return matches
}

// AppState is the full persisted application state: every trip in display
// order plus a weak reference to the currently active trip.
// ActiveTripID is nil when no trip is active and must be cleared when the
// referenced trip is deleted.
type AppState struct {
	Trips        []Trip  `json:"trips"`
	ActiveTripID *string `json:"activeTripId"`
}

// Clone returns a deep copy of the state. Read paths hand out clones so
// no caller can mutate repository-owned state behind the mutex.
func (s AppState) Clone() AppState {
	out := AppState{Trips: make([]Trip, len(s.Trips))}
	for i, t := range s.Trips {
		out.Trips[i] = t.Clone()
	}
	if s.ActiveTripID != nil {
		id := *s.ActiveTripID
		out.ActiveTripID = &id
	}
	return out
}

// Clone returns a deep copy of the trip, including every nested
// collection.
func (t Trip) Clone() Trip {
	out := t
	out.DailyItinerary = make([]Day, len(t.DailyItinerary))
	for i, d := range t.DailyItinerary {
		day := d
		day.Activities = cloneActivities(d.Activities)
		out.DailyItinerary[i] = day
	}
	out.Stays = make([]Stay, len(t.Stays))
	for i, s := range t.Stays {
		stay := s
		stay.Attachments = cloneAttachments(s.Attachments)
		out.Stays[i] = stay
	}
	out.Transports = make([]Transport, len(t.Transports))
	for i, tr := range t.Transports {
		transport := tr
		transport.Attachments = cloneAttachments(tr.Attachments)
		out.Transports[i] = transport
	}
	out.Checklist = append([]ChecklistItem(nil), t.Checklist...)
	if out.Checklist == nil {
		out.Checklist = []ChecklistItem{}
	}
	return out
}

func cloneActivities(in []Activity) []Activity {
	out := make([]Activity, len(in))
	for i, a := range in {
		act := a
		act.Attachments = cloneAttachments(a.Attachments)
		out[i] = act
	}
	return out
}

func cloneAttachments(in []Attachment) []Attachment {
	if in == nil {
		return nil
	}
	return append([]Attachment(nil), in...)
}
