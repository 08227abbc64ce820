package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/theme"
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/token"
)

// Button renders a labelled button treatment from button-role tokens.
type Button struct {
	label   string
	role    token.ButtonRole
	focused bool
}

// NewButton creates a button with the given label and role.
func NewButton(label string, role token.ButtonRole) *Button {
	return &Button{label: label, role: role}
}

// WithFocus marks the button focused.
func (b *Button) WithFocus(focused bool) *Button {
	b.focused = focused
	return b
}

// Render draws the button under the supplied theme.
func (b *Button) Render(t theme.Theme) string {
	bg, fg := buttonColors(t, b.role)

	style := InsetStyle(t, token.InsetControl, theme.EdgesAll).
		Background(bg).
		Foreground(fg).
		Bold(true)

	if b.focused {
		style = style.Border(BorderForRadius(t, token.RadiusMedium)).
			BorderForeground(Color(t, token.ColorAccent))
	}

	label := b.label
	if t.Text(token.TextButtonLabel).Uppercase {
		label = strings.ToUpper(label)
	}
	return style.Render(label)
}

func buttonColors(t theme.Theme, role token.ButtonRole) (lipgloss.Color, lipgloss.Color) {
	switch role {
	case token.ButtonSecondary:
		return Color(t, token.ColorSecondaryCTA), Color(t, token.ColorTextPrimary)
	case token.ButtonTertiary:
		return Color(t, token.ColorBackground), Color(t, token.ColorPrimaryCTA)
	case token.ButtonDestructive:
		return Color(t, token.ColorDestructive), Color(t, token.ColorOnPrimaryCTA)
	default:
		return Color(t, token.ColorPrimaryCTA), Color(t, token.ColorOnPrimaryCTA)
	}
}
