package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesJSONWithLevelAndMessage(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Info("browsed node", "nodeId", "ns=1;i=42")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &decoded))
	assert.Equal(t, "info", decoded["level"])
	assert.Equal(t, "browsed node", decoded["message"])
	assert.Equal(t, "ns=1;i=42", decoded["nodeId"])
	assert.Contains(t, decoded, "ts")
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Debug("d")
	l.Warn("w")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"debug"`)
	assert.Contains(t, lines[1], `"level":"warn"`)
}

func TestNopDiscardsEverything(t *testing.T) {
	l := Nop()
	assert.NotPanics(t, func() {
		l.Debug("noop")
		l.Info("noop")
		l.Warn("noop")
	})
}
