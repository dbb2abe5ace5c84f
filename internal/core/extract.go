package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const (
	// FallbackFlightSummary is used when the provider omits "summary".
	FallbackFlightSummary = "已為您找到最佳航班。"

	flightIDPrefix = "flight"
	recIDPrefix    = "rec"
)

var (
	jsonFence = regexp.MustCompile("(?s)```json[ \\t]*\\r?\\n(.*?)```")
	anyFence  = regexp.MustCompile("(?s)```(?:[A-Za-z0-9_+-]*[ \\t]*\\r?\\n)?(.*?)```")
)

// ExtractBlock returns the contents of the first ```json fenced block in raw,
// falling back to the first fenced block of any language. It returns
// ErrBlockNotFound when there is none or the block is empty.
func ExtractBlock(raw string) (string, error) {
	m := jsonFence.FindStringSubmatch(raw)
	if m == nil {
		m = anyFence.FindStringSubmatch(raw)
	}
	if m == nil {
		return "", ErrBlockNotFound
	}
	block := strings.TrimSpace(m[1])
	if block == "" {
		return "", ErrBlockNotFound
	}
	return block, nil
}

// text accepts a JSON string, a bare number or null. Providers occasionally
// return ratings and prices as numbers.
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*t = text(n.String())
	return nil
}

type flightPayload struct {
	Summary *text          `json:"summary"`
	Flights []flightRecord `json:"flights"`
}

type flightRecord struct {
	Airline      text   `json:"airline"`
	Price        text   `json:"price"`
	Dates        text   `json:"dates"`
	OutboundDate text   `json:"outboundDate"`
	ReturnDate   text   `json:"returnDate"`
	Duration     text   `json:"duration"`
	Type         text   `json:"type"`
	Tags         []text `json:"tags"`
	Notes        text   `json:"notes"`
}

type guidePayload struct {
	MapCenter       *text       `json:"mapCenter"`
	Recommendations []recRecord `json:"recommendations"`
}

type recRecord struct {
	Name            text   `json:"name"`
	Category        text   `json:"category"`
	Description     text   `json:"description"`
	Location        text   `json:"location"`
	Subway          text   `json:"subway"`
	PriceLevel      text   `json:"priceLevel"`
	Rating          text   `json:"rating"`
	Tags            []text `json:"tags"`
	BookingPlatform text   `json:"bookingPlatform"`
}

// ParseFlights decodes a flight block and assigns flight-N identifiers in
// provider order.
func ParseFlights(block string) (*FlightResponse, error) {
	var payload flightPayload
	if err := decodeBlock(block, &payload); err != nil {
		return nil, err
	}
	if payload.Flights == nil {
		return nil, fmt.Errorf("%w: missing \"flights\" list", ErrMalformedPayload)
	}

	resp := &FlightResponse{
		Flights: make([]FlightOption, 0, len(payload.Flights)),
		Summary: FallbackFlightSummary,
	}
	if payload.Summary != nil && strings.TrimSpace(string(*payload.Summary)) != "" {
		resp.Summary = string(*payload.Summary)
	}
	for i, f := range payload.Flights {
		resp.Flights = append(resp.Flights, FlightOption{
			ID:           syntheticID(flightIDPrefix, i),
			Airline:      string(f.Airline),
			Price:        string(f.Price),
			Dates:        string(f.Dates),
			OutboundDate: string(f.OutboundDate),
			ReturnDate:   string(f.ReturnDate),
			Duration:     string(f.Duration),
			Type:         string(f.Type),
			Tags:         texts(f.Tags),
			Notes:        string(f.Notes),
		})
	}
	return resp, nil
}

// ParseGuide decodes a guide block and assigns rec-N identifiers in provider
// order. A missing mapCenter falls back to the first recommendation's
// location, then to the destination city.
func ParseGuide(block string, destination Destination) (*TravelResponse, error) {
	var payload guidePayload
	if err := decodeBlock(block, &payload); err != nil {
		return nil, err
	}
	if payload.Recommendations == nil {
		return nil, fmt.Errorf("%w: missing \"recommendations\" list", ErrMalformedPayload)
	}

	resp := &TravelResponse{
		Recommendations: make([]TravelRecommendation, 0, len(payload.Recommendations)),
	}
	for i, r := range payload.Recommendations {
		resp.Recommendations = append(resp.Recommendations, TravelRecommendation{
			ID:              syntheticID(recIDPrefix, i),
			Name:            string(r.Name),
			Category:        string(r.Category),
			Description:     string(r.Description),
			Location:        string(r.Location),
			Subway:          string(r.Subway),
			PriceLevel:      string(r.PriceLevel),
			Rating:          string(r.Rating),
			Tags:            texts(r.Tags),
			BookingPlatform: string(r.BookingPlatform),
		})
	}

	switch {
	case payload.MapCenter != nil && strings.TrimSpace(string(*payload.MapCenter)) != "":
		resp.MapCenter = string(*payload.MapCenter)
	case len(resp.Recommendations) > 0 && resp.Recommendations[0].Location != "":
		resp.MapCenter = resp.Recommendations[0].Location
	default:
		resp.MapCenter = destination.City()
	}
	return resp, nil
}

func decodeBlock(block string, v any) error {
	trimmed := strings.TrimSpace(block)
	if !strings.HasPrefix(trimmed, "{") {
		return fmt.Errorf("%w: expected a JSON object", ErrMalformedPayload)
	}
	if err := json.Unmarshal([]byte(trimmed), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}

func syntheticID(prefix string, i int) string {
	return fmt.Sprintf("%s-%d", prefix, i)
}

func texts(in []text) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		out = append(out, string(t))
	}
	return out
}
