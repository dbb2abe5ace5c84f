package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(&buf, "debug", true)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("pipeline", "flights").Debug("compiled query")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "compiled query", entry["msg"])
	assert.Equal(t, "flights", entry["pipeline"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewWithOutput_LevelFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(&buf, "verbose", false)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
