package components

import (
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/theme"
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/token"
)

// Card renders titled content on a card surface.
type Card struct {
	title   string
	content string
}

// NewCard creates a card.
func NewCard(title, content string) *Card {
	return &Card{title: title, content: content}
}

// Render draws the card under the supplied theme: card inset, card
// surface background, separator-colored rounded border, title in the
// headline_s role.
func (c *Card) Render(t theme.Theme) string {
	body := c.content
	if c.title != "" {
		body = RenderText(t, token.TextHeadlineS, c.title) + "\n" + body
	}

	return InsetStyle(t, token.InsetCard, theme.EdgesAll).
		Background(Color(t, token.ColorSurfaceCard)).
		Foreground(Color(t, token.ColorTextPrimary)).
		Border(BorderForRadius(t, token.RadiusLarge)).
		BorderForeground(Color(t, token.ColorSeparator)).
		Render(body)
}
