// Package suggest talks to the optional external itinerary-suggestion
// service and converts its responses into domain activities.
//
// The service is an untrusted collaborator: its output crosses the same
// boundary as a file import, so every activity gets a freshly generated
// id, its type is validated against the known enum (unknown values map
// to Other), and costs are coerced non-negative before anything is
// merged into a trip.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wayfarer-app/wayfarer/internal/domain"
)

// Client calls the suggestion service over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient constructs a Client for the service at baseURL. apiKey may
// be empty when the service does not require authentication.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// request is the wire format the service expects.
type request struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
}

// rawDay / rawActivity mirror the service's response wire format.
// Fields are decoded loosely and sanitized before use.
type rawDay struct {
	Day        int           `json:"day"`
	Activities []rawActivity `json:"activities"`
}

type rawActivity struct {
	Time     string  `json:"time"`
	Location string  `json:"location"`
	Type     string  `json:"type"`
	Note     string  `json:"note"`
	Cost     float64 `json:"cost"`
}

// Itinerary requests a suggested day-by-day itinerary for destination
// and returns it sanitized into domain types.
// Returns domain.ErrValidation for an empty destination or non-positive
// day count, domain.ErrParse (wrapped) when the service responds with
// something that is not the expected JSON shape.
func (c *Client) Itinerary(ctx context.Context, destination string, days int) ([]domain.SuggestedDay, error) {
	if destination == "" {
		return nil, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if days < 1 {
		return nil, fmt.Errorf("%w: days must be at least 1", domain.ErrValidation)
	}

	body, err := json.Marshal(request{Destination: destination, Days: days})
	if err != nil {
		return nil, fmt.Errorf("suggest.Client.Itinerary: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("suggest.Client.Itinerary: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suggest.Client.Itinerary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggest.Client.Itinerary: unexpected status %d", resp.StatusCode)
	}

	var raw []rawDay
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("suggest.Client.Itinerary: %w: %v", domain.ErrParse, err)
	}

	return sanitize(raw), nil
}

// sanitize converts the untrusted wire payload into domain types,
// applying the boundary rules the rest of the system relies on.
func sanitize(raw []rawDay) []domain.SuggestedDay {
	out := make([]domain.SuggestedDay, 0, len(raw))
	for _, d := range raw {
		day := domain.SuggestedDay{Day: d.Day, Activities: make([]domain.Activity, 0, len(d.Activities))}
		for _, a := range d.Activities {
			cost := a.Cost
			if cost < 0 {
				cost = 0
			}
			day.Activities = append(day.Activities, domain.Activity{
				ID:       domain.NewID(),
				Time:     a.Time,
				Type:     domain.ParseActivityType(a.Type),
				Location: a.Location,
				Note:     a.Note,
				Cost:     cost,
			})
		}
		out = append(out, day)
	}
	return out
}
