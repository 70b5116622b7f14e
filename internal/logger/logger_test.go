package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriterLogger_EmitsJSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf)

	log.Info().Str("pattern", "src/*.js").Msg("expanding")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "expanding", entry["message"])
	assert.Equal(t, "src/*.js", entry["pattern"])
	assert.Contains(t, entry, "time")
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	log.Error().Msg("should vanish")
	// Nop loggers are disabled entirely.
	assert.Equal(t, "disabled", log.GetLevel().String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWriterLogger(&buf)
	child := parent.GetChildLogger()

	child.Info().Msg("from child")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "from child", entry["message"])
}
