package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchParamsValidate(t *testing.T) {
	require.NoError(t, baseFlightParams().Validate())

	tests := []struct {
		name  string
		mut   func(*SearchParams)
		field string
	}{
		{"unknown departure", func(p *SearchParams) { p.Departure = "Tainan (TNN)" }, "departure"},
		{"unknown destination", func(p *SearchParams) { p.Destination = "Paris (CDG)" }, "destination"},
		{"bad month", func(p *SearchParams) { p.StartMonth = "2026-13" }, "startMonth"},
		{"min too small", func(p *SearchParams) { p.MinDays = 0 }, "minDays"},
		{"max too large", func(p *SearchParams) { p.MaxDays = 31 }, "maxDays"},
		{"min above max", func(p *SearchParams) { p.MinDays, p.MaxDays = 7, 5 }, "maxDays"},
		{"inverted window", func(p *SearchParams) { p.OutboundTime = TimeRange{Start: 12, End: 6} }, "outboundTime"},
		{"hour out of range", func(p *SearchParams) { p.ReturnTime = TimeRange{Start: 16, End: 25} }, "returnTime"},
		{"unknown cabin", func(p *SearchParams) { p.CabinClass = "First" }, "cabinClass"},
		{"empty airline", func(p *SearchParams) { p.Airline = "" }, "airline"},
		{"airline short code", func(p *SearchParams) { p.Airline = "ci" }, "airline"},
		{"airline any alias", func(p *SearchParams) { p.Airline = "any" }, "airline"},
		{"cabin short code", func(p *SearchParams) { p.CabinClass = "economy" }, "cabinClass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseFlightParams()
			tt.mut(&p)
			err := p.Validate()

			var ve ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
}

func TestTravelParamsValidate(t *testing.T) {
	assert.NoError(t, TravelParams{Mode: ModeInspiration, Destination: DestinationJeju}.Validate())
	assert.NoError(t, TravelParams{Mode: ModeExplore, Destination: DestinationJeju, FoodTag: FoodTagAny}.Validate())

	assert.Error(t, TravelParams{Mode: "shopping", Destination: DestinationJeju}.Validate())
	assert.Error(t, TravelParams{Mode: ModeInspiration, Destination: "Paris"}.Validate())
	assert.Error(t, TravelParams{Mode: ModeAccommodation, Destination: DestinationJeju, PriceLevel: "cheap"}.Validate())
	assert.Error(t, TravelParams{Mode: ModeExplore, Destination: DestinationJeju, FoodTag: "tacos"}.Validate())

	// Aliases are only accepted after Normalize.
	assert.Error(t, TravelParams{Mode: "Accommodation", Destination: DestinationJeju}.Validate())
	assert.Error(t, TravelParams{Mode: ModeAccommodation, Destination: DestinationJeju, PriceLevel: "any"}.Validate())
	assert.Error(t, TravelParams{Mode: ModeAccommodation, Destination: DestinationJeju, AccomType: "near-subway"}.Validate())
	assert.Error(t, TravelParams{Mode: ModeExplore, Destination: DestinationJeju, Category: "food"}.Validate())
}

func TestSearchParamsNormalize_AnyAirline(t *testing.T) {
	for _, alias := range []string{"any", "ALL", "all", " Any "} {
		t.Run(alias, func(t *testing.T) {
			p := baseFlightParams()
			p.Destination = DestinationBusan
			p.Airline = Airline(alias)
			p.Normalize()

			require.NoError(t, p.Validate())
			assert.Equal(t, AirlineAll, p.Airline)
			q := CompileFlightQuery(p)
			assert.Contains(t, q.Instruction, KoreaCarrierShortlist)
			assert.NotContains(t, q.Instruction, "Strict airline restriction")
		})
	}
}

func TestSearchParamsNormalize_Codes(t *testing.T) {
	p := SearchParams{
		Departure:    "khh",
		Destination:  "PUS",
		StartMonth:   "2026-05",
		MinDays:      3,
		MaxDays:      7,
		OutboundTime: TimeRange{Start: 6, End: 12},
		ReturnTime:   TimeRange{Start: 16, End: 23},
		CabinClass:   "mixed",
		Airline:      "ci",
	}
	p.Normalize()

	require.NoError(t, p.Validate())
	assert.Equal(t, DepartureKHH, p.Departure)
	assert.Equal(t, DestinationBusan, p.Destination)
	assert.Equal(t, CabinMixed, p.CabinClass)
	assert.Equal(t, AirlineCI, p.Airline)
	assert.Contains(t, CompileFlightQuery(p).Instruction, `flights operated by "China Airlines (中華航空)"`)
}

func TestSearchParamsNormalize_LeavesUnknownValues(t *testing.T) {
	p := baseFlightParams()
	p.Airline = "Aeroflot"
	p.Normalize()

	assert.Equal(t, Airline("Aeroflot"), p.Airline)
	assert.Error(t, p.Validate())
}

func TestTravelParamsNormalize_Accommodation(t *testing.T) {
	p := TravelParams{
		Mode:        "Accommodation",
		Destination: "osaka",
		AccomType:   "near-subway",
		PriceLevel:  "any",
	}
	p.Normalize()

	require.NoError(t, p.Validate())
	assert.Equal(t, ModeAccommodation, p.Mode)
	assert.Equal(t, AccomNearSubway, p.AccomType)
	assert.Equal(t, PriceAny, p.PriceLevel)

	q := CompileGuideQuery(p)
	assert.Contains(t, q.Instruction, "5-6 places to stay")
	assert.Contains(t, q.Instruction, AccommodationRequirement(AccomNearSubway))
	assert.NotContains(t, q.Instruction, "Strict budget")
}

func TestTravelParamsNormalize_Explore(t *testing.T) {
	p := TravelParams{
		Mode:        "explore",
		Destination: DestinationOsaka,
		Category:    "food",
		FoodTag:     "ramen",
	}
	p.Normalize()

	require.NoError(t, p.Validate())
	assert.Equal(t, CategoryFood, p.Category)
	assert.Equal(t, FoodTags[3], p.FoodTag)

	q := CompileGuideQuery(p)
	assert.Contains(t, q.Instruction, "price per person")
	assert.Contains(t, q.Instruction, FoodTags[3])
}

func TestParseHelpers(t *testing.T) {
	d, err := ParseDeparture("tpe")
	require.NoError(t, err)
	assert.Equal(t, DepartureTPE, d)

	dest, err := ParseDestination("HND")
	require.NoError(t, err)
	assert.Equal(t, DestinationTokyo, dest)

	dest, err = ParseDestination("osaka")
	require.NoError(t, err)
	assert.Equal(t, DestinationOsaka, dest)

	a, err := ParseAirline("")
	require.NoError(t, err)
	assert.Equal(t, AirlineAll, a)

	a, err = ParseAirline("jx")
	require.NoError(t, err)
	assert.Equal(t, AirlineJX, a)

	c, err := ParseCabinClass("mixed")
	require.NoError(t, err)
	assert.Equal(t, CabinMixed, c)

	_, err = ParseDestination("Paris")
	assert.Error(t, err)

	assert.Equal(t, "NRT", AirportCode(string(DestinationTokyo)))
	assert.Equal(t, "Seoul", DestinationSeoul.City())
}
