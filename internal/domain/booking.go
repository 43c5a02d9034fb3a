package domain

// Stay is a lodging booking spanning [CheckIn, CheckOut] inclusive.
// Its association with individual days is computed from the dates at
// read time (see Trip.StaysOn); nothing is denormalised into Day.
type Stay struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	CheckIn     string       `json:"checkIn"`
	CheckOut    string       `json:"checkOut"`
	Location    string       `json:"location"`
	MapLink     string       `json:"mapLink,omitempty"`
	Cost        float64      `json:"cost"`
	Note        string       `json:"note"`
	Attachments []Attachment `json:"attachments"`
}

// TransportType is the mode of a point-to-point travel booking.
type TransportType string

const (
	TransportFlight    TransportType = "Flight"
	TransportTrain     TransportType = "Train"
	TransportBus       TransportType = "Bus"
	TransportRentalCar TransportType = "Rental Car"
)

// Transport is a point-to-point travel booking. It belongs to any day
// whose date equals DepartureDate or ArrivalDate (computed, not stored).
type Transport struct {
	ID            string        `json:"id"`
	Type          TransportType `json:"type"`
	Provider      string        `json:"provider"`
	FlightNo      string        `json:"flightNo,omitempty"`
	From          string        `json:"from"`
	To            string        `json:"to"`
	DepartureDate string        `json:"departureDate"`
	DepartureTime string        `json:"departureTime"`
	ArrivalDate   string        `json:"arrivalDate"`
	ArrivalTime   string        `json:"arrivalTime"`
	Cost          float64       `json:"cost"`
	Note          string        `json:"note"`
	Attachments   []Attachment  `json:"attachments"`
}
