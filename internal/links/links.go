package links

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/beetlebot/flyguide/internal/core"
)

const (
	skyscannerBase = "https://www.skyscanner.com.tw/transport/flights"
	mapsSearchBase = "https://www.google.com/maps/search/"
	mapsEmbedBase  = "https://maps.google.com/maps"
	mapZoom        = 15
)

var cheapestMarkers = []string{"最低", "超值", "Cheapest"}

// BookingURL builds a Skyscanner deep link for a flight option. Without two
// valid ISO dates it falls back to the route page.
func BookingURL(from core.Departure, to core.Destination, f core.FlightOption) string {
	origin := strings.ToLower(core.AirportCode(string(from)))
	dest := strings.ToLower(core.AirportCode(string(to)))
	route := fmt.Sprintf("%s/%s/%s", skyscannerBase, origin, dest)

	out, okOut := skyscannerDate(f.OutboundDate)
	back, okBack := skyscannerDate(f.ReturnDate)
	if !okOut || !okBack {
		return route
	}
	return fmt.Sprintf("%s/%s/%s", route, out, back)
}

// skyscannerDate turns 2026-05-12 into 260512.
func skyscannerDate(iso string) (string, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(iso))
	if err != nil {
		return "", false
	}
	return t.Format("060102"), true
}

// MapSearchURL opens a Google Maps search for a location string.
func MapSearchURL(location string) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", location)
	return mapsSearchBase + "?" + q.Encode()
}

// MapEmbedURL is the iframe URL centred on a location.
func MapEmbedURL(location string) string {
	q := url.Values{}
	q.Set("q", location)
	q.Set("z", fmt.Sprint(mapZoom))
	q.Set("output", "embed")
	return mapsEmbedBase + "?" + q.Encode()
}

// IsCheapest reports whether any tag marks the option as the lowest fare.
func IsCheapest(f core.FlightOption) bool {
	for _, tag := range f.Tags {
		for _, m := range cheapestMarkers {
			if strings.Contains(tag, m) {
				return true
			}
		}
	}
	return false
}

// DisplayTags drops the cheapest markers, which are shown as a badge instead.
func DisplayTags(f core.FlightOption) []string {
	out := make([]string, 0, len(f.Tags))
	for _, tag := range f.Tags {
		marker := false
		for _, m := range cheapestMarkers {
			if strings.Contains(tag, m) {
				marker = true
				break
			}
		}
		if !marker {
			out = append(out, tag)
		}
	}
	return out
}

// FlightLinks is a flight option annotated for display.
type FlightLinks struct {
	ID         string   `json:"id"`
	BookingURL string   `json:"bookingUrl"`
	Cheapest   bool     `json:"cheapest"`
	Tags       []string `json:"tags"`
}

// Annotate builds FlightLinks for every option of a response, in order.
func Annotate(from core.Departure, to core.Destination, resp *core.FlightResponse) []FlightLinks {
	out := make([]FlightLinks, 0, len(resp.Flights))
	for _, f := range resp.Flights {
		out = append(out, FlightLinks{
			ID:         f.ID,
			BookingURL: BookingURL(from, to, f),
			Cheapest:   IsCheapest(f),
			Tags:       DisplayTags(f),
		})
	}
	return out
}
