package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) Generate(_ context.Context, instruction string) (string, error) {
	f.prompts = append(f.prompts, instruction)
	return f.response, f.err
}

func TestPipeline_SearchFlights(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n{\"summary\":\"ok\",\"flights\":[{\"airline\":\"A\"}]}\n```"}
	p := NewPipeline(gen, nil)

	params := baseFlightParams()
	resp, err := p.SearchFlights(context.Background(), params)
	require.NoError(t, err)

	require.Len(t, gen.prompts, 1)
	assert.Equal(t, CompileFlightQuery(params).Prompt(), gen.prompts[0])
	assert.Equal(t, "ok", resp.Summary)
	assert.Equal(t, "flight-0", resp.Flights[0].ID)
}

func TestPipeline_UnreadableKeepsRawText(t *testing.T) {
	raw := "I'm sorry, I cannot browse flight prices right now."
	p := NewPipeline(&fakeGenerator{response: raw}, nil)

	_, err := p.SearchFlights(context.Background(), baseFlightParams())
	require.Error(t, err)

	assert.Equal(t, KindUnreadable, KindOf(err))
	assert.Equal(t, raw, RawText(err))
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestPipeline_MalformedIsUnreadable(t *testing.T) {
	raw := "```json\n{\"flights\": [\n```"
	p := NewPipeline(&fakeGenerator{response: raw}, nil)

	_, err := p.SearchFlights(context.Background(), baseFlightParams())
	assert.Equal(t, KindUnreadable, KindOf(err))
	assert.ErrorIs(t, err, ErrMalformedPayload)
	assert.Equal(t, raw, RawText(err))
}

func TestPipeline_GuideUnreadableMatchesFlights(t *testing.T) {
	p := NewPipeline(&fakeGenerator{response: "no block here"}, nil)

	resp, err := p.SearchGuide(context.Background(), TravelParams{Mode: ModeInspiration, Destination: DestinationOsaka})
	assert.Nil(t, resp)
	assert.Equal(t, KindUnreadable, KindOf(err))
}

func TestPipeline_ProviderErrors(t *testing.T) {
	t.Run("classified error passes through", func(t *testing.T) {
		p := NewPipeline(&fakeGenerator{err: NewRateLimitedError(errors.New("429"))}, nil)
		_, err := p.SearchFlights(context.Background(), baseFlightParams())
		assert.Equal(t, KindRateLimited, KindOf(err))
	})

	t.Run("missing credential passes through", func(t *testing.T) {
		p := NewPipeline(&fakeGenerator{err: NewMissingCredentialError("gemini", "GEMINI_API_KEY")}, nil)
		_, err := p.SearchGuide(context.Background(), TravelParams{Mode: ModeExplore, Destination: DestinationTokyo})
		assert.Equal(t, KindMissingCredential, KindOf(err))
	})

	t.Run("plain error becomes provider error", func(t *testing.T) {
		cause := errors.New("connection reset")
		p := NewPipeline(&fakeGenerator{err: cause}, nil)
		_, err := p.SearchFlights(context.Background(), baseFlightParams())
		assert.Equal(t, KindProvider, KindOf(err))
		assert.ErrorIs(t, err, cause)
	})
}

func TestPipeline_SearchGuide(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n{\"recommendations\":[{\"name\":\"A\",\"location\":\"Umeda\"},{\"name\":\"B\"}]}\n```"}
	p := NewPipeline(gen, nil)

	params := TravelParams{Mode: ModeAccommodation, Destination: DestinationOsaka, AccomType: AccomResort}
	resp, err := p.SearchGuide(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, CompileGuideQuery(params).Prompt(), gen.prompts[0])
	assert.Equal(t, "Umeda", resp.MapCenter)
	assert.Equal(t, []string{"rec-0", "rec-1"}, []string{resp.Recommendations[0].ID, resp.Recommendations[1].ID})
}
