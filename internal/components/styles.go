// Package components holds the presentation-layer bindings: thin
// adapters that apply resolved design tokens to lipgloss styles. All
// theming decisions live in the resolver; this layer only translates its
// outputs into something a terminal can render.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/theme"
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/token"
)

// Color converts a resolved color role into a lipgloss color.
func Color(t theme.Theme, role token.ColorRole) lipgloss.Color {
	return lipgloss.Color(t.Color(role).Hex())
}

// TextStyle builds a lipgloss style from a resolved text role. Point
// sizes and font families have no terminal equivalent; weight maps onto
// bold/faint and the color role carries through.
func TextStyle(t theme.Theme, role token.TextRole) lipgloss.Style {
	resolved := t.Text(role)

	style := lipgloss.NewStyle().Foreground(Color(t, resolved.Color))
	switch resolved.Weight {
	case token.WeightLight:
		style = style.Faint(true)
	case token.WeightSemibold, token.WeightBold:
		style = style.Bold(true)
	}
	return style
}

// RenderText renders a label under a text role, honoring the role's
// uppercase flag.
func RenderText(t theme.Theme, role token.TextRole, label string) string {
	if t.Text(role).Uppercase {
		label = strings.ToUpper(label)
	}
	return TextStyle(t, role).Render(label)
}

// InsetStyle applies a container role's resolved edge padding. Point
// values are quantized to terminal cells; a filtered-out axis applies
// nothing at all, which is distinct from padding zero.
func InsetStyle(t theme.Theme, role token.InsetRole, edges theme.Edges) lipgloss.Style {
	inset := t.Inset(role, edges)

	style := lipgloss.NewStyle()
	if inset.Horizontal.Present {
		h := cells(inset.Horizontal.Value)
		style = style.PaddingLeft(h).PaddingRight(h)
	}
	if inset.Vertical.Present {
		v := cells(inset.Vertical.Value)
		style = style.PaddingTop(v).PaddingBottom(v)
	}
	return style
}

// cells quantizes a point magnitude to terminal cells. One cell per four
// points keeps the default ramp visually distinct at terminal
// resolution.
func cells(points float64) int {
	if points <= 0 {
		return 0
	}
	return int(points/4 + 0.5)
}

// BorderForRadius picks a border shape for a radius token: anything at or
// above the medium radius reads as rounded in a terminal.
func BorderForRadius(t theme.Theme, tok token.RadiusToken) lipgloss.Border {
	if t.Radius(tok) >= t.Radius(token.RadiusMedium) {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}
