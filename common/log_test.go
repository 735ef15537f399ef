package common

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, level)

	level, err = ParseLogLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, level)

	_, err = ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestSugaredLoggerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	lc := DefaultLogConfig()
	lc.Level = LevelWarn
	lc.Console = &buf

	logger, err := NewSugaredLogger("test", lc)
	require.NoError(t, err)

	logger.Infof("hidden %d", 1)
	logger.Warnf("shown %d", 2)
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "test")
}

func TestSugaredLoggerWithoutSinks(t *testing.T) {
	lc := DefaultLogConfig()
	lc.Console = nil

	logger, err := NewSugaredLogger("quiet", lc)
	require.NoError(t, err)
	logger.Errorf("dropped")
}
