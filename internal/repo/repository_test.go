package repo_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-app/wayfarer/internal/domain"
	"github.com/wayfarer-app/wayfarer/internal/repo"
)

// ---- test doubles ----------------------------------------------------------

// recordingSaver is a test double for repo.Saver that records every
// flushed state. Set err to simulate a failing store.
type recordingSaver struct {
	saves []domain.AppState
	err   error
}

func (s *recordingSaver) Save(state domain.AppState) error {
	s.saves = append(s.saves, state)
	return s.err
}

// compile-time check: recordingSaver must satisfy repo.Saver.
var _ repo.Saver = (*recordingSaver)(nil)

// ---- helpers ---------------------------------------------------------------

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRepo(saver repo.Saver) *repo.Repository {
	return repo.New(domain.AppState{Trips: []domain.Trip{}}, saver, quietLogger())
}

func createTrip(t *testing.T, r *repo.Repository, title, start, end string) domain.Trip {
	t.Helper()
	trip, err := r.CreateTrip(repo.CreateTripInput{Title: title, StartDate: start, EndDate: end})
	require.NoError(t, err)
	return trip
}

func strPtr(s string) *string { return &s }

func dayDates(trip domain.Trip) []string {
	out := make([]string, len(trip.DailyItinerary))
	for i, d := range trip.DailyItinerary {
		out[i] = d.Date
	}
	return out
}

// ---- CreateTrip ------------------------------------------------------------

func TestCreateTrip_ExpandsItinerary(t *testing.T) {
	r := newRepo(nil)

	trip := createTrip(t, r, "California", "2026-05-19", "2026-05-21")

	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, domain.StatusPlanning, trip.Status)
	assert.Equal(t, 2000.0, trip.Budget.Total)
	require.Len(t, trip.DailyItinerary, 3)
	assert.Equal(t, []string{"2026-05-19", "2026-05-20", "2026-05-21"}, dayDates(trip))
	for i, d := range trip.DailyItinerary {
		assert.Equal(t, i+1, d.Day)
	}
	assert.Empty(t, trip.Stays)
	assert.Empty(t, trip.Transports)
	assert.Empty(t, trip.Checklist)
}

func TestCreateTrip_Validation(t *testing.T) {
	r := newRepo(nil)

	cases := []struct {
		name              string
		title, start, end string
	}{
		{"blank title", "  ", "2026-05-19", "2026-05-21"},
		{"missing start", "Trip", "", "2026-05-21"},
		{"missing end", "Trip", "2026-05-19", ""},
		{"bad start", "Trip", "19.05.2026", "2026-05-21"},
		{"bad end", "Trip", "2026-05-19", "garbage"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.CreateTrip(repo.CreateTripInput{Title: tc.title, StartDate: tc.start, EndDate: tc.end})
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	assert.Empty(t, r.State().Trips, "failed creates must not mutate state")
}

func TestCreateTrip_UniqueIDs(t *testing.T) {
	r := newRepo(nil)

	a := createTrip(t, r, "A", "2026-05-19", "2026-05-19")
	b := createTrip(t, r, "B", "2026-05-19", "2026-05-19")

	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreateTrip_Flushes(t *testing.T) {
	saver := &recordingSaver{}
	r := newRepo(saver)

	createTrip(t, r, "Flush", "2026-05-19", "2026-05-20")

	require.Len(t, saver.saves, 1)
	assert.Len(t, saver.saves[0].Trips, 1)
}

// ---- UpdateTrip ------------------------------------------------------------

func TestUpdateTrip_ShallowMerge(t *testing.T) {
	r := newRepo(nil)
	trip := createTrip(t, r, "Old Title", "2026-05-19", "2026-05-21")

	updated, err := r.UpdateTrip(trip.ID, repo.TripPatch{
		Title:  strPtr("New Title"),
		Budget: &domain.Budget{Total: 5000},
	})

	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, 5000.0, updated.Budget.Total)
	assert.Equal(t, "2026-05-19", updated.StartDate, "unspecified fields unchanged")
	assert.Len(t, updated.DailyItinerary, 3, "itinerary untouched when dates unchanged")
}

func TestUpdateTrip_NotFound(t *testing.T) {
	r := newRepo(nil)

	_, err := r.UpdateTrip("nope", repo.TripPatch{Title: strPtr("x")})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateTrip_NegativeBudget(t *testing.T) {
	r := newRepo(nil)
	trip := createTrip(t, r, "Trip", "2026-05-19", "2026-05-21")

	_, err := r.UpdateTrip(trip.ID, repo.TripPatch{Budget: &domain.Budget{Total: -1}})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateTrip_UnparseableDateRejected(t *testing.T) {
	r := newRepo(nil)
	trip := createTrip(t, r, "Trip", "2026-05-19", "2026-05-21")

	_, err := r.UpdateTrip(trip.ID, repo.TripPatch{EndDate: strPtr("not-a-date")})

	assert.ErrorIs(t, err, domain.ErrValidation)
	got, err := r.Trip(trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-05-21", got.EndDate, "rejected patch must not mutate")
	assert.Len(t, got.DailyItinerary, 3)
}

func TestUpdateTrip_BannerPositionClamped(t *testing.T) {
	r := newRepo(nil)
	trip := createTrip(t, r, "Trip", "2026-05-19", "2026-05-21")

	pos := 250
	updated, err := r.UpdateTrip(trip.ID, repo.TripPatch{BannerPosition: &pos})

	require.NoError(t, err)
	assert.Equal(t, 100, updated.BannerPosition)
}

// ---- date-range reconciliation --------------------------------------------

func addActivity(t *testing.T, r *repo.Repository, tripID string, dayIndex int, act domain.Activity) domain.Activity {
	t.Helper()
	added, err := r.AddActivity(tripID, dayIndex, act)
	require.NoError(t, err)
	return added
}

func TestUpdateTrip_SameDates_ItineraryUnchanged(t *testing.T) {
	r := newRepo(nil)
	trip := createTrip(t, r, "Trip", "2026-05-19", "2026-05-21")
	addActivity(t, r, trip.ID, 1, domain.Activity{Time: "09:00", Type: domain.ActivityFood, Location: "Cafe", Cost: 12})
	before, err := r.Trip(trip.ID)
	require.NoError(t, err)

	updated, err := r.UpdateTrip(trip.ID, repo.TripPatch{
		StartDate: strPtr("2026-05-19"),
		EndDate:   strPtr("2026-05-21"),
	})

	require.NoError(t, err)
	assert.Equal(t, before.DailyItinerary, updated.DailyItinerary)
}

func TestUpdateTrip_ShrinkRange_DropsOutOfRangeActivities(t *testing.T) {
	r := newRepo(nil)
	trip := createTrip(t, r, "Trip", "2026-05-19", "2026-05-21")
	kept := addActivity(t, r, trip.ID, 0, domain.Activity{Type: domain.ActivityFood, Location: "Breakfast", Cost: 50})
	addActivity(t, r, trip.ID, 2, domain.Activity{Type: domain.ActivityShopping, Location: "Mall", Cost: 20})

	updated, err := r.UpdateTrip(trip.ID, repo.TripPatch{EndDate: strPtr("2026-05-20")})

	require.NoError(t, err)
	require.Len(t, updated.DailyItinerary, 2)
	assert.Equal(t, []string{"2026-05-19", "2026-05-20"}, dayDates(updated))
	require.Len(t, updated.DailyItinerary[0].Activities, 1)
	assert.Equal(t, kept.ID, updated.DailyItinerary[0].Activities[0].ID)
	assert.Empty(t, updated.DailyItinerary[1].Activities)
}

func TestUpdateTrip_GrowRange_PreservesAndPads(t *testing.T) {
	r := newRepo(nil)
	trip := createTrip(t, r, "Trip", "2026-05-19", "2026-05-20")
	act := addActivity(t, r, trip.ID, 1, domain.Activity{Type: domain.ActivitySightseeing, Location: "Bridge", Cost: 0})

	updated, err := r.UpdateTrip(trip.ID, repo.TripPatch{
		StartDate: strPtr("2026-05-18"),
		EndDate:   strPtr("2026-05-22"),
	})

	require.NoError(t, err)
	require.Len(t, updated.DailyItinerary, 5)
	assert.Equal(t, []string{"2026-05-18", "2026-05-19", "2026-05-20", "2026-05-21", "2026-05-22"}, dayDates(updated))
	for i, d := range updated.DailyItinerary {
		assert.Equal(t, i+1, d.Day)
	}
	// The activity stays attached to its calendar date (now day 3).
	require.Len(t, updated.DailyItinerary[2].Activities, 1)
	assert.Equal(t, act.ID, updated.DailyItinerary[2].Activities[0].ID)
	assert.Empty(t, updated.DailyItinerary[0].Activities)
	assert.Empty(t, updated.DailyItinerary[4].Activities)
}

func TestUpdateTrip_ShiftRange_ReassignsDayIndices(t *testing.T) {
	r := newRepo(nil)
	trip := createTrip(t, r, "Trip", "2026-05-19", "2026-05-21")
	act := addActivity(t, r, trip.ID, 2, domain.Activity{Type: domain.ActivityHotel, Location: "Inn", Cost: 180})

	// New range starts where the old one ended: only 05-21 survives.
	updated, err := r.UpdateTrip(trip.ID, repo.TripPatch{
		StartDate: strPtr("2026-05-21"),
		EndDate:   strPtr("2026-05-23"),
	})

	require.NoError(t, err)
	require.Len(t, updated.DailyItinerary, 3)
	assert.Equal(t, 1, updated.DailyItinerary[0].Day)
	require.Len(t, updated.DailyItinerary[0].Activities, 1)
	assert.Equal(t, act.ID, updated.DailyItinerary[0].Activities[0].ID)
}

func TestUpdateTrip_EndBeforeStart_ClampsToOneDay(t *testing.T) {
	r := newRepo(nil)
	trip := createTrip(t, r, "Trip", "2026-05-19", "2026-05-21")

	updated, err := r.UpdateTrip(trip.ID, repo.TripPatch{EndDate: strPtr("2026-05-10")})

	require.NoError(t, err)
	require.Len(t, updated.DailyItinerary, 1)
	assert.Equal(t, "2026-05-19", updated.DailyItinerary[0].Date)
}

// ---- DeleteTrip / SetActiveTrip --------------------------------------------

func TestDeleteTrip_ClearsActiveReference(t *testing.T) {
	r := newRepo(nil)
	trip := createTrip(t, r, "Active", "2026-05-19", "2026-05-20")
	require.NoError(t, r.SetActiveTrip(&trip.ID))

	r.DeleteTrip(trip.ID)

	state := r.State()
	assert.Empty(t, state.Trips)
	assert.Nil(t, state.ActiveTripID)
}

func TestDeleteTrip_NonActive_LeavesActiveReference(t *testing.T) {
	r := newRepo(nil)
	active := createTrip(t, r, "Active", "2026-05-19", "2026-05-20")
	other := createTrip(t, r, "Other", "2026-06-01", "2026-06-02")
	require.NoError(t, r.SetActiveTrip(&active.ID))

	r.DeleteTrip(other.ID)

	state := r.State()
	require.NotNil(t, state.ActiveTripID)
	assert.Equal(t, active.ID, *state.ActiveTripID)
	require.Len(t, state.Trips, 1)
}

func TestDeleteTrip_UnknownID_IsNoOp(t *testing.T) {
	saver := &recordingSaver{}
	r := newRepo(saver)
	createTrip(t, r, "Trip", "2026-05-19", "2026-05-20")
	flushes := len(saver.saves)

	r.DeleteTrip("nope")

	assert.Len(t, r.State().Trips, 1)
	assert.Len(t, saver.saves, flushes, "no-op delete must not flush")
}

func TestSetActiveTrip_UnknownID(t *testing.T) {
	r := newRepo(nil)

	err := r.SetActiveTrip(strPtr("nope"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, r.State().ActiveTripID)
}

func TestSetActiveTrip_Nil_Clears(t *testing.T) {
	r := newRepo(nil)
	trip := createTrip(t, r, "Trip", "2026-05-19", "2026-05-20")
	require.NoError(t, r.SetActiveTrip(&trip.ID))

	require.NoError(t, r.SetActiveTrip(nil))

	assert.Nil(t, r.State().ActiveTripID)
}

// ---- UpdateNotes -----------------------------------------------------------

func TestUpdateNotes(t *testing.T) {
	r := newRepo(nil)
	trip := createTrip(t, r, "Trip", "2026-05-19", "2026-05-20")

	require.NoError(t, r.UpdateNotes(trip.ID, "bring sunscreen"))

	got, err := r.Trip(trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "bring sunscreen", got.Notes)

	assert.ErrorIs(t, r.UpdateNotes("nope", "x"), domain.ErrNotFound)
}

// ---- snapshot isolation ----------------------------------------------------

func TestState_SnapshotIsIsolated(t *testing.T) {
	r := newRepo(nil)
	trip := createTrip(t, r, "Trip", "2026-05-19", "2026-05-20")
	addActivity(t, r, trip.ID, 0, domain.Activity{Type: domain.ActivityFood, Location: "Cafe", Cost: 10})

	snap := r.State()
	snap.Trips[0].Title = "tampered"
	snap.Trips[0].DailyItinerary[0].Activities[0].Cost = 999

	got, err := r.Trip(trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "Trip", got.Title)
	assert.Equal(t, 10.0, got.DailyItinerary[0].Activities[0].Cost)
}

// TestFlush_ErrorDoesNotUndoMutation: persistence is fire-and-forget
// relative to the in-memory update, so a failing saver never rolls back.
func TestFlush_ErrorDoesNotUndoMutation(t *testing.T) {
	saver := &recordingSaver{err: assert.AnError}
	r := newRepo(saver)

	trip := createTrip(t, r, "Trip", "2026-05-19", "2026-05-20")

	got, err := r.Trip(trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "Trip", got.Title)
}
