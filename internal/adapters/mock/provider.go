package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"github.com/beetlebot/flyguide/internal/core"
)

// SearchProvider answers compiled queries with canned, deterministic
// responses in the same fenced-block shape a live provider is asked for.
type SearchProvider struct{}

func NewSearchProvider() *SearchProvider {
	return &SearchProvider{}
}

func (p *SearchProvider) Name() string            { return "mock_search" }
func (p *SearchProvider) Tier() core.ProviderTier { return core.TierEasySignup }
func (p *SearchProvider) Capabilities() []core.Capability {
	return []core.Capability{core.CapFlightsSearch, core.CapGuideSearch}
}
func (p *SearchProvider) Available() (bool, string) { return true, "" }

func (p *SearchProvider) Generate(ctx context.Context, instruction string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rng := rand.New(rand.NewSource(hashSeed(instruction)))

	var payload any
	if strings.Contains(instruction, `"flights": [`) {
		payload = mockFlights(instruction, rng)
	} else {
		payload = mockGuide(instruction, rng)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode mock payload: %w", err)
	}
	return "Here is what I found.\n\n```json\n" + string(data) + "\n```\n", nil
}

func hashSeed(s string) int64 {
	var h int64
	for _, c := range s {
		h = h*31 + int64(c)
	}
	if h < 0 {
		h = -h
	}
	return h
}
