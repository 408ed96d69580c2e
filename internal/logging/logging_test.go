package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, Console(false).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, Console(true).GetLevel())
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.WarnLevel)

	logger.Info().Msg("filtered")
	logger.Warn().Str("part", "fit").Msg("kept")

	out := buf.String()
	require.NotContains(t, out, "filtered")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"part":"fit"`)
	assert.Contains(t, out, "kept")
}
