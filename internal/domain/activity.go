package domain

// ActivityType categorises an itinerary entry for budget grouping.
type ActivityType string

const (
	ActivityFood        ActivityType = "Food"
	ActivitySightseeing ActivityType = "Sightseeing"
	ActivityTransport   ActivityType = "Transport"
	ActivityHotel       ActivityType = "Hotel"
	ActivityShopping    ActivityType = "Shopping"
	ActivityOther       ActivityType = "Other"
)

// ActivityTypes lists every category in display order. Budget summaries
// iterate this list so that no category is skipped merely because no
// activity currently carries it.
func ActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityFood,
		ActivitySightseeing,
		ActivityTransport,
		ActivityHotel,
		ActivityShopping,
		ActivityOther,
	}
}

// ParseActivityType maps a free-form string to a known category.
// Unknown values map to ActivityOther; external payloads (imports, the
// suggestion service) are untrusted and must never introduce new
// categories.
func ParseActivityType(s string) ActivityType {
	switch ActivityType(s) {
	case ActivityFood, ActivitySightseeing, ActivityTransport, ActivityHotel, ActivityShopping, ActivityOther:
		return ActivityType(s)
	}
	return ActivityOther
}

// Activity is a single timed, costed itinerary entry within a Day.
// Time is descriptive metadata, not a sort key: activities stay in
// insertion order.
type Activity struct {
	ID          string       `json:"id"`
	Time        string       `json:"time"`
	Type        ActivityType `json:"type"`
	Location    string       `json:"location"`
	MapLink     string       `json:"mapLink,omitempty"`
	Note        string       `json:"note"`
	Cost        float64      `json:"cost"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is an inline binary payload (ticket PDF, screenshot) carried
// verbatim inside the aggregate. Data is an opaque encoded string.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}

// SuggestedDay is one day of an externally-suggested itinerary after it
// has passed the validating parser: activity ids are freshly generated,
// types normalised, and costs non-negative.
type SuggestedDay struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}
