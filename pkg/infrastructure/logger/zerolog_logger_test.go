package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLoggerTo(&buf, "scheduler", Options{Level: "info", Format: "json"})

	l.Debugf("hidden %d", 1)
	l.Warnf("dropped row %d", 7)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "scheduler", entry["component"])
	assert.Equal(t, "dropped row 7", entry["message"])
}

func TestZerologLogger_DebugFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLoggerTo(&buf, "batching", Options{Level: "debug", Format: "json"})

	l.Debugw("batch closed", map[string]any{"recipe": "NR", "lines": 2})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "NR", entry["recipe"])
	assert.EqualValues(t, 2, entry["lines"])
}

func TestZerologLoggerMethods(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	var buf bytes.Buffer
	l := NewZerologLoggerTo(&buf, "test", Options{})
	l.Infof("info %s", "test")
	l.Errorf("error")
	assert.Contains(t, buf.String(), "info test")

	var nop Logger = NopLogger{}
	nop.Infof("ignored")
}
