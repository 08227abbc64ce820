package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"spec": "high-contrast", "scheme": "dark"})
	log.Info("theme installed")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "theme installed", entry["message"])
	require.Equal(t, "high-contrast", entry["spec"])
	require.Equal(t, "dark", entry["scheme"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"path": "theme.yaml"})
	log.Error(errors.New("boom"), "spec load failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "spec load failed", entry["message"])
	require.Equal(t, "theme.yaml", entry["path"])
	require.Equal(t, "boom", entry["error"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	log.Info("no-op")
	log.Error(errors.New("boom"), "no-op")
	require.Nil(t, log.WithFields(map[string]any{"k": "v"}))
}
