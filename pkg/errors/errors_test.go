package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeErrorFormatting(t *testing.T) {
	t.Parallel()

	underlying := errors.New("unexpected mapping")

	withPath := NewDecodeError("theme.yaml", 12, underlying)
	require.EqualError(t, withPath, "decode error: theme.yaml:12: unexpected mapping")

	noLine := NewDecodeError("theme.yaml", 0, underlying)
	require.EqualError(t, noLine, "decode error: theme.yaml: unexpected mapping")

	bare := NewDecodeError("", 3, underlying)
	require.EqualError(t, bare, "decode error: line 3: unexpected mapping")

	require.ErrorIs(t, withPath, underlying)
}

func TestValidationErrorFormatting(t *testing.T) {
	t.Parallel()

	err := NewValidationError("specVersion", "must be a semantic version", nil)
	require.EqualError(t, err, "validation error: specVersion: must be a semantic version")

	fieldless := NewValidationError("", "spec is nil", nil)
	require.EqualError(t, fieldless, "validation error: spec is nil")
}

func TestEncodeErrorWraps(t *testing.T) {
	t.Parallel()

	underlying := errors.New("yaml: cannot marshal")
	err := NewEncodeError(underlying)
	require.EqualError(t, err, "encode error: yaml: cannot marshal")
	require.ErrorIs(t, err, underlying)
}
