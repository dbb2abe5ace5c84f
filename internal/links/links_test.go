package links

import (
	"testing"

	"github.com/beetlebot/flyguide/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestBookingURL(t *testing.T) {
	f := core.FlightOption{OutboundDate: "2026-05-12", ReturnDate: "2026-05-16"}
	assert.Equal(t,
		"https://www.skyscanner.com.tw/transport/flights/tpe/nrt/260512/260516",
		BookingURL(core.DepartureTPE, core.DestinationTokyo, f))
}

func TestBookingURL_RouteFallback(t *testing.T) {
	for _, f := range []core.FlightOption{
		{},
		{OutboundDate: "2026-05-12"},
		{OutboundDate: "5/12", ReturnDate: "5/16"},
	} {
		assert.Equal(t,
			"https://www.skyscanner.com.tw/transport/flights/khh/icn",
			BookingURL(core.DepartureKHH, core.DestinationSeoul, f))
	}
}

func TestMapURLs(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=Osaka+Station",
		MapSearchURL("Osaka Station"))
	assert.Equal(t,
		"https://maps.google.com/maps?output=embed&q=%E5%A4%A7%E9%98%AA&z=15",
		MapEmbedURL("大阪"))
}

func TestCheapestTags(t *testing.T) {
	f := core.FlightOption{Tags: []string{"最低價", "早去晚回"}}
	assert.True(t, IsCheapest(f))
	assert.Equal(t, []string{"早去晚回"}, DisplayTags(f))

	assert.False(t, IsCheapest(core.FlightOption{Tags: []string{"早去晚回"}}))
	assert.True(t, IsCheapest(core.FlightOption{Tags: []string{"Cheapest fare"}}))
}

func TestAnnotate(t *testing.T) {
	resp := &core.FlightResponse{Flights: []core.FlightOption{
		{ID: "flight-0", Tags: []string{"超值"}},
		{ID: "flight-1", OutboundDate: "2026-06-01", ReturnDate: "2026-06-05"},
	}}

	got := Annotate(core.DepartureTSA, core.DestinationTokyo, resp)
	assert.Len(t, got, 2)
	assert.True(t, got[0].Cheapest)
	assert.Empty(t, got[0].Tags)
	assert.Equal(t, "https://www.skyscanner.com.tw/transport/flights/tsa/nrt/260601/260605", got[1].BookingURL)
}
