package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLogger_StructuredFields(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	var buf bytes.Buffer
	l := NewWithWriter("planner", &buf)

	l.Infow("route optimized", map[string]any{"stops": 3, "feasible": true})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "planner", entry["component"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "route optimized", entry["message"])
	assert.Equal(t, float64(3), entry["stops"])
	assert.Equal(t, true, entry["feasible"])
}

func TestZerologLogger_LevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	var buf bytes.Buffer
	l := NewWithWriter("api", &buf)

	l.Debugf("hidden %d", 1)
	l.Infof("hidden")
	l.Warnf("shown %s", "warn")
	l.Errorf("shown error")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestZerologLogger_DevConsole(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	l := New("test")
	require.NotNil(t, l)
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
}
