package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/spec"
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/token"
)

func TestResolveInsetAllEdges(t *testing.T) {
	t.Parallel()

	s := spec.Default()
	inset := ResolveInset(s, token.InsetScreen, EdgesAll)

	require.True(t, inset.Horizontal.Present)
	require.True(t, inset.Vertical.Present)
	assert.Equal(t, s.Layout.Spacing.XL, inset.Horizontal.Value)
	assert.Equal(t, s.Layout.Spacing.L, inset.Vertical.Value)
}

func TestResolveInsetHorizontalOnly(t *testing.T) {
	t.Parallel()

	s := spec.Default()
	all := ResolveInset(s, token.InsetCard, EdgesAll)
	horizontal := ResolveInset(s, token.InsetCard, EdgesHorizontal)

	require.True(t, horizontal.Horizontal.Present)
	assert.False(t, horizontal.Vertical.Present, "filtered axis must read as absent, not zero")
	assert.Equal(t, all.Horizontal.Value, horizontal.Horizontal.Value)
}

func TestResolveInsetSingleEdgeSelectsItsAxis(t *testing.T) {
	t.Parallel()

	s := spec.Default()
	top := ResolveInset(s, token.InsetControl, EdgeTop)

	assert.True(t, top.Vertical.Present)
	assert.False(t, top.Horizontal.Present)
}

func TestResolveInsetUnknownRoleEqualsScreen(t *testing.T) {
	t.Parallel()

	s := spec.Default()
	unknown := ResolveInset(s, token.InsetRole("sidebar"), EdgesAll)
	screen := ResolveInset(s, token.InsetScreen, EdgesAll)

	assert.Equal(t, screen, unknown)
}

func TestResolveInsetWithoutScreenUsesHardCodedDefault(t *testing.T) {
	t.Parallel()

	s := spec.Default()
	s.Layout.Insets = map[token.InsetRole]spec.AxisInset{}

	inset := ResolveInset(s, token.InsetRole("sidebar"), EdgesAll)
	assert.Equal(t, s.Layout.Spacing.XL, inset.Horizontal.Value)
	assert.Equal(t, s.Layout.Spacing.L, inset.Vertical.Value)
}

func TestAxisValueOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7.0, AxisValue{Value: 7, Present: true}.Or(3))
	assert.Equal(t, 3.0, AxisValue{}.Or(3))
}
