package codec

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/logger"
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/spec"
)

func TestLoadFileOrDefaultReturnsFileContents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, EncodeToFile(spec.HighContrast(), path))

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	got := LoadFileOrDefault(path, log)
	assert.Equal(t, spec.HighContrast(), got)
	assert.Empty(t, buf.String())
}

func TestLoadFileOrDefaultFallsBack(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	got := LoadFileOrDefault(filepath.Join(t.TempDir(), "missing.yaml"), log)
	assert.Equal(t, spec.Default(), got)
	assert.Contains(t, buf.String(), "falling back to bundled spec")
}
