package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/beetlebot/flyguide/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Writer
	Writer = &buf
	t.Cleanup(func() { Writer = prev })
	return &buf
}

func TestJSON_KeepsURLsReadable(t *testing.T) {
	buf := capture(t)

	require.NoError(t, JSON(map[string]string{"url": "https://www.google.com/maps/search/?api=1&query=x"}))
	assert.Contains(t, buf.String(), "api=1&query=x")
	assert.Contains(t, buf.String(), "\n  \"url\"")
}

func TestJSONCompact(t *testing.T) {
	buf := capture(t)

	require.NoError(t, JSONCompact(map[string]int{"a": 1}))
	assert.Equal(t, "{\"a\":1}\n", buf.String())
}

func TestError_UnreadableCarriesRaw(t *testing.T) {
	buf := capture(t)

	Error(core.NewUnreadableError("provider prose", core.ErrBlockNotFound))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "could not understand results", resp.Error)
	assert.Equal(t, core.KindUnreadable, resp.Kind)
	assert.Equal(t, "provider prose", resp.Raw)
}

func TestNewErrorResponse_Kinds(t *testing.T) {
	assert.Equal(t, core.KindValidation, NewErrorResponse(core.NewValidationError("minDays", "bad")).Kind)
	assert.Equal(t, core.KindRateLimited, NewErrorResponse(core.NewRateLimitedError(nil)).Kind)
	assert.Equal(t, core.KindProvider, NewErrorResponse(errors.New("boom")).Kind)
	assert.Empty(t, NewErrorResponse(errors.New("boom")).Raw)
}
