package live

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/beetlebot/flyguide/internal/config"
	"github.com/beetlebot/flyguide/internal/core"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// GeminiProvider answers compiled queries with Gemini and the Google Search
// grounding tool. Set GEMINI_API_KEY (free key at https://aistudio.google.com)
// to enable.
type GeminiProvider struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewGeminiProvider(cfg *config.Config, logger *logrus.Logger) *GeminiProvider {
	if logger == nil {
		logger = logrus.New()
	}
	return &GeminiProvider{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Gemini.Timeout},
		logger:     logger,
	}
}

func (g *GeminiProvider) Name() string            { return config.GeminiProvider }
func (g *GeminiProvider) Tier() core.ProviderTier { return core.TierEasySignup }
func (g *GeminiProvider) Capabilities() []core.Capability {
	return []core.Capability{core.CapFlightsSearch, core.CapGuideSearch, core.CapWebGrounding}
}

func (g *GeminiProvider) Available() (bool, string) {
	if g.apiKey() == "" {
		return false, fmt.Sprintf("set %s (free key at https://aistudio.google.com)", config.GeminiAPIKeyEnv)
	}
	return true, ""
}

func (g *GeminiProvider) apiKey() string {
	return g.cfg.Credential(config.GeminiProvider, "apiKey")
}

// Generate sends one instruction and returns the concatenated text of the
// first candidate that has any.
func (g *GeminiProvider) Generate(ctx context.Context, instruction string) (string, error) {
	key := g.apiKey()
	if key == "" {
		return "", core.NewMissingCredentialError(g.Name(), config.GeminiAPIKeyEnv)
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     key,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.httpClient,
	}
	if g.cfg.Gemini.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.cfg.Gemini.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return "", core.NewProviderError(fmt.Errorf("create gemini client: %w", err))
	}

	g.logger.WithFields(logrus.Fields{
		"model":        g.cfg.Gemini.Model,
		"prompt_bytes": len(instruction),
	}).Debug("gemini request")

	resp, err := client.Models.GenerateContent(ctx, g.cfg.Gemini.Model, genai.Text(instruction), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		if isRateLimited(err) {
			return "", core.NewRateLimitedError(err)
		}
		return "", core.NewProviderError(fmt.Errorf("gemini generate content: %w", err))
	}

	txt := responseText(resp)
	g.logger.WithField("response_bytes", len(txt)).Debug("gemini response")
	return txt, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
			continue
		}
		var b strings.Builder
		for _, part := range candidate.Content.Parts {
			if part != nil {
				b.WriteString(part.Text)
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return ""
}

func isRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED"
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code == http.StatusTooManyRequests || apiErrPtr.Status == "RESOURCE_EXHAUSTED"
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
