package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-app/wayfarer/internal/domain"
)

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

// ---- ParseDate -------------------------------------------------------------

func TestParseDate_OK(t *testing.T) {
	d, err := domain.ParseDate("2026-05-19")
	require.NoError(t, err)
	assert.Equal(t, "2026-05-19", d.String())
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "not-a-date", "2026-13-01", "19/05/2026", "2026-05-19T00:00:00Z"} {
		_, err := domain.ParseDate(s)
		assert.ErrorIs(t, err, domain.ErrValidation, "input %q", s)
	}
}

func TestDate_DaysUntil(t *testing.T) {
	start := mustDate(t, "2026-05-19")
	assert.Equal(t, 0, start.DaysUntil(start))
	assert.Equal(t, 2, start.DaysUntil(mustDate(t, "2026-05-21")))
	assert.Equal(t, -2, mustDate(t, "2026-05-21").DaysUntil(start))
}

// ---- ExpandRange -----------------------------------------------------------

func TestExpandRange_ThreeDays(t *testing.T) {
	days := domain.ExpandRange(mustDate(t, "2026-05-19"), mustDate(t, "2026-05-21"))

	require.Len(t, days, 3)
	for i, want := range []string{"2026-05-19", "2026-05-20", "2026-05-21"} {
		assert.Equal(t, i+1, days[i].Day)
		assert.Equal(t, want, days[i].Date)
		assert.Empty(t, days[i].Activities)
		assert.NotNil(t, days[i].Activities)
	}
}

func TestExpandRange_SingleDay(t *testing.T) {
	days := domain.ExpandRange(mustDate(t, "2026-05-19"), mustDate(t, "2026-05-19"))

	require.Len(t, days, 1)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, "2026-05-19", days[0].Date)
}

func TestExpandRange_EndBeforeStart_ClampsToOneDay(t *testing.T) {
	days := domain.ExpandRange(mustDate(t, "2026-05-21"), mustDate(t, "2026-05-19"))

	require.Len(t, days, 1)
	assert.Equal(t, "2026-05-21", days[0].Date)
}

// TestExpandRange_Properties checks length, ordering, and endpoints for a
// spread of range sizes, including one spanning a DST transition in most
// timezones (late March).
func TestExpandRange_Properties(t *testing.T) {
	cases := []struct {
		start, end string
	}{
		{"2026-05-19", "2026-05-26"},
		{"2026-03-27", "2026-04-02"},
		{"2026-02-27", "2026-03-02"},
		{"2026-12-30", "2027-01-03"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s..%s", tc.start, tc.end), func(t *testing.T) {
			start, end := mustDate(t, tc.start), mustDate(t, tc.end)
			days := domain.ExpandRange(start, end)

			require.Len(t, days, start.DaysUntil(end)+1)
			assert.Equal(t, tc.start, days[0].Date)
			assert.Equal(t, tc.end, days[len(days)-1].Date)
			for i := 1; i < len(days); i++ {
				prev := mustDate(t, days[i-1].Date)
				assert.Equal(t, prev.AddDays(1).String(), days[i].Date, "dates must be contiguous")
				assert.Equal(t, i+1, days[i].Day)
			}
		})
	}
}
