package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBlock(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{
			name: "json fence",
			raw:  "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "prose around fence",
			raw:  "Here you go:\n```json\n{\"a\":1}\n```\nHave a nice trip!",
			want: `{"a":1}`,
		},
		{
			name: "crlf fence",
			raw:  "```json\r\n{\"a\":1}\r\n```",
			want: `{"a":1}`,
		},
		{
			name: "json fence wins over earlier plain fence",
			raw:  "```\nnot this\n```\n```json\n{\"b\":2}\n```",
			want: `{"b":2}`,
		},
		{
			name: "first json fence only",
			raw:  "```json\n{\"a\":1}\n```\n```json\n{\"b\":2}\n```",
			want: `{"a":1}`,
		},
		{
			name: "untagged fence",
			raw:  "```\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name:    "no fence",
			raw:     "Sorry, I could not find any flights.",
			wantErr: ErrBlockNotFound,
		},
		{
			name:    "empty fence",
			raw:     "```json\n\n```",
			wantErr: ErrBlockNotFound,
		},
		{
			name:    "unterminated fence",
			raw:     "```json\n{\"a\":1}",
			wantErr: ErrBlockNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBlock(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlights_IDsFollowProviderOrder(t *testing.T) {
	resp, err := ParseFlights(`{"flights":[{"airline":"A","price":"NT$9,000"},{"airline":"B","price":"NT$3,000"}]}`)
	require.NoError(t, err)

	require.Len(t, resp.Flights, 2)
	assert.Equal(t, "flight-0", resp.Flights[0].ID)
	assert.Equal(t, "A", resp.Flights[0].Airline)
	assert.Equal(t, "flight-1", resp.Flights[1].ID)
	assert.Equal(t, "B", resp.Flights[1].Airline)
}

func TestParseFlights_MissingSummaryFallback(t *testing.T) {
	resp, err := ParseFlights(`{"flights":[]}`)
	require.NoError(t, err)
	assert.Equal(t, FallbackFlightSummary, resp.Summary)
	assert.NotNil(t, resp.Flights)
	assert.Empty(t, resp.Flights)

	resp, err = ParseFlights(`{"summary":null,"flights":[]}`)
	require.NoError(t, err)
	assert.Equal(t, FallbackFlightSummary, resp.Summary)
}

func TestParseFlights_EmptyIsSuccess(t *testing.T) {
	resp, err := ParseFlights(`{"summary":"此航線沒有直飛航班。","flights":[]}`)
	require.NoError(t, err)
	assert.Empty(t, resp.Flights)
	assert.Equal(t, "此航線沒有直飛航班。", resp.Summary)
}

func TestParseFlights_Malformed(t *testing.T) {
	for _, block := range []string{
		`{"flights":[{"airline":"A"}`,
		`{"summary":"ok"}`,
		`{"summary":"ok","flights":null}`,
		`{"flights":"none"}`,
		`[{"airline":"A"}]`,
		`flights: none`,
		`{"flights":[{"tags":[{"x":1}]}]}`,
	} {
		_, err := ParseFlights(block)
		assert.ErrorIs(t, err, ErrMalformedPayload, block)
	}
}

func TestParseFlights_NumericFieldsKeptAsText(t *testing.T) {
	resp, err := ParseFlights(`{"flights":[{"airline":"A","price":8500,"notes":null}]}`)
	require.NoError(t, err)
	assert.Equal(t, "8500", resp.Flights[0].Price)
	assert.Equal(t, "", resp.Flights[0].Notes)
}

func TestParseGuide_IDsAndFields(t *testing.T) {
	block := `{
		"mapCenter": "大阪車站",
		"recommendations": [
			{"name": "一蘭拉麵", "category": "美食", "location": "道頓堀", "rating": 4.3, "tags": ["拉麵"]},
			{"name": "黑門市場", "category": "美食", "location": "日本橋", "bookingPlatform": "Agoda"}
		]
	}`
	resp, err := ParseGuide(block, DestinationOsaka)
	require.NoError(t, err)

	assert.Equal(t, "大阪車站", resp.MapCenter)
	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, "rec-0", resp.Recommendations[0].ID)
	assert.Equal(t, "4.3", resp.Recommendations[0].Rating)
	assert.Equal(t, []string{"拉麵"}, resp.Recommendations[0].Tags)
	assert.Equal(t, "rec-1", resp.Recommendations[1].ID)
	assert.Equal(t, "Agoda", resp.Recommendations[1].BookingPlatform)
	assert.Empty(t, resp.Recommendations[1].Tags)
}

func TestParseGuide_MapCenterFallback(t *testing.T) {
	resp, err := ParseGuide(`{"recommendations":[{"name":"A","location":"Nakasu"}]}`, DestinationFukuoka)
	require.NoError(t, err)
	assert.Equal(t, "Nakasu", resp.MapCenter)

	resp, err = ParseGuide(`{"mapCenter":"","recommendations":[]}`, DestinationFukuoka)
	require.NoError(t, err)
	assert.Equal(t, "Fukuoka", resp.MapCenter)
}

func TestParseGuide_MissingList(t *testing.T) {
	_, err := ParseGuide(`{"mapCenter":"Osaka"}`, DestinationOsaka)
	assert.True(t, errors.Is(err, ErrMalformedPayload))
}

// A well-formed response fed back through extract and parse keeps every
// field the provider sent and adds only the identifiers.
func TestFlightRoundTrip(t *testing.T) {
	q := CompileFlightQuery(baseFlightParams())
	require.NotEmpty(t, q.Prompt())

	raw := "Sure!\n```json\n" + `{
  "summary": "五月大阪直飛票價平穩。",
  "flights": [
    {"airline": "樂桃航空", "price": "NT$6,200", "dates": "5/12 - 5/16", "outboundDate": "2026-05-12", "returnDate": "2026-05-16", "duration": "2h 40m", "type": "直飛", "tags": ["最低價"], "notes": "含20kg託運"},
    {"airline": "星宇航空", "price": "NT$11,800", "dates": "5/20 - 5/25", "outboundDate": "2026-05-20", "returnDate": "2026-05-25", "duration": "2h 35m", "type": "直飛", "tags": ["早去晚回"], "notes": ""}
  ]
}` + "\n```"

	block, err := ExtractBlock(raw)
	require.NoError(t, err)
	resp, err := ParseFlights(block)
	require.NoError(t, err)

	want := &FlightResponse{
		Summary: "五月大阪直飛票價平穩。",
		Flights: []FlightOption{
			{ID: "flight-0", Airline: "樂桃航空", Price: "NT$6,200", Dates: "5/12 - 5/16", OutboundDate: "2026-05-12", ReturnDate: "2026-05-16", Duration: "2h 40m", Type: "直飛", Tags: []string{"最低價"}, Notes: "含20kg託運"},
			{ID: "flight-1", Airline: "星宇航空", Price: "NT$11,800", Dates: "5/20 - 5/25", OutboundDate: "2026-05-20", ReturnDate: "2026-05-25", Duration: "2h 35m", Type: "直飛", Tags: []string{"早去晚回"}, Notes: ""},
		},
	}
	assert.Equal(t, want, resp)
}
