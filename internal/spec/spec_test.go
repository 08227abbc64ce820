package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/token"
)

func TestDefaultPopulatesEveryCategory(t *testing.T) {
	t.Parallel()

	s := Default()

	assert.Equal(t, Version, s.Version)
	require.NotEmpty(t, s.Colors)
	require.NotEmpty(t, s.Typography)
	require.NotEmpty(t, s.Layout.Insets)

	assert.Contains(t, s.Typography, token.TextBody, "body role backs the typography fallback chain")
	assert.Contains(t, s.Colors, token.ColorTextPrimary)
	assert.Contains(t, s.Layout.Insets, token.InsetScreen, "screen role backs the inset fallback chain")
}

func TestDefaultScalesAreMonotonic(t *testing.T) {
	t.Parallel()

	layout := Default().Layout
	assert.True(t, layout.Spacing.Monotonic())
	assert.True(t, layout.GridGap.Monotonic())
	assert.True(t, layout.TouchTarget.Monotonic())
}

func TestNewWithColorsSwapsOnlyColors(t *testing.T) {
	t.Parallel()

	custom := map[token.ColorRole]ColorPair{
		token.ColorTextPrimary: {Light: "#000000", Dark: "#FFFFFF"},
	}
	s := New(WithColors(custom))

	assert.Len(t, s.Colors, 1)
	assert.Equal(t, Default().Typography, s.Typography, "typography keeps its default")
	assert.Equal(t, Default().Layout, s.Layout, "layout keeps its default")
}

func TestNewCopiesCallerMaps(t *testing.T) {
	t.Parallel()

	custom := map[token.ColorRole]ColorPair{
		token.ColorTextPrimary: {Light: "#000000", Dark: "#FFFFFF"},
	}
	s := New(WithColors(custom))

	custom[token.ColorTextPrimary] = ColorPair{Light: "#FF0000", Dark: "#FF0000"}
	assert.Equal(t, "#000000", s.Colors[token.ColorTextPrimary].Light,
		"mutating the caller's map must not affect the constructed spec")
}

func TestDeriveLeavesBaseUntouched(t *testing.T) {
	t.Parallel()

	base := Default()
	derived := Derive(base, WithVisual(Visual{
		Radius: Radius{Small: 1, Medium: 2, Large: 3, Pill: 100},
		Shadow: Shadow{},
	}))

	assert.Equal(t, Default().Visual, base.Visual)
	assert.Equal(t, 2.0, derived.Visual.Radius.Medium)

	derived.Colors[token.ColorAccent] = ColorPair{Light: "#123456", Dark: "#123456"}
	assert.Equal(t, Default().Colors[token.ColorAccent], base.Colors[token.ColorAccent],
		"derived specs must not alias the base spec's maps")
}

func TestScaleValue(t *testing.T) {
	t.Parallel()

	s := Scale{XS: 2, S: 4, M: 8, L: 12, XL: 16, XXL: 24}

	assert.Equal(t, 2.0, s.Value(token.ScaleXS))
	assert.Equal(t, 24.0, s.Value(token.ScaleXXL))
	assert.Equal(t, 8.0, s.Value(token.ScaleToken("huge")), "unknown tokens resolve to the middle magnitude")
}

func TestScaleMonotonic(t *testing.T) {
	t.Parallel()

	assert.True(t, Scale{XS: 1, S: 1, M: 2, L: 3, XL: 5, XXL: 8}.Monotonic())
	assert.False(t, Scale{XS: 1, S: 5, M: 2, L: 3, XL: 5, XXL: 8}.Monotonic())
}

func TestVisualValueLookups(t *testing.T) {
	t.Parallel()

	v := Default().Visual

	assert.Equal(t, v.Radius.Medium, v.Radius.Value(token.RadiusMedium))
	assert.Equal(t, v.Radius.Medium, v.Radius.Value(token.RadiusToken("giant")))
	assert.Equal(t, v.Shadow.Small, v.Shadow.Value(token.ShadowSmall))
	assert.Equal(t, 0.0, v.Shadow.Value(token.ShadowToken("deep")))
}

func TestHighContrastSwapsOnlyColors(t *testing.T) {
	t.Parallel()

	hc := HighContrast()

	assert.NotEqual(t, Default().Colors[token.ColorTextPrimary], hc.Colors[token.ColorTextPrimary])
	assert.Equal(t, Default().Typography, hc.Typography)
	assert.Equal(t, Default().Visual, hc.Visual)
}
