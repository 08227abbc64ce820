package spec

import (
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/token"
)

// Option overrides one category of a Spec under construction. Categories
// are all-or-nothing: an option replaces its category entirely.
type Option func(*Spec)

// WithColors replaces the color category.
func WithColors(colors map[token.ColorRole]ColorPair) Option {
	return func(s *Spec) {
		s.Colors = cloneColorMap(colors)
	}
}

// WithTypography replaces the typography category.
func WithTypography(typography map[token.TextRole]TextSpec) Option {
	return func(s *Spec) {
		s.Typography = cloneTextMap(typography)
	}
}

// WithLayout replaces the layout category.
func WithLayout(layout Layout) Option {
	return func(s *Spec) {
		layout.Insets = cloneInsetMap(layout.Insets)
		s.Layout = layout
	}
}

// WithVisual replaces the visual category.
func WithVisual(visual Visual) Option {
	return func(s *Spec) {
		s.Visual = visual
	}
}

// New builds a Spec from the bundled defaults with the supplied category
// overrides applied. Every category is always populated; construction
// cannot fail. Role maps are copied so the result does not alias caller
// state.
func New(opts ...Option) Spec {
	s := Default()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Derive returns a copy of an existing Spec with overrides applied. This
// is the supported way to change theme: build a new value and install it
// wholesale, never mutate in place.
func Derive(base Spec, opts ...Option) Spec {
	s := clone(base)
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func clone(s Spec) Spec {
	s.Colors = cloneColorMap(s.Colors)
	s.Typography = cloneTextMap(s.Typography)
	s.Layout.Insets = cloneInsetMap(s.Layout.Insets)
	return s
}

func cloneColorMap(in map[token.ColorRole]ColorPair) map[token.ColorRole]ColorPair {
	out := make(map[token.ColorRole]ColorPair, len(in))
	for role, pair := range in {
		out[role] = pair
	}
	return out
}

func cloneTextMap(in map[token.TextRole]TextSpec) map[token.TextRole]TextSpec {
	out := make(map[token.TextRole]TextSpec, len(in))
	for role, ts := range in {
		out[role] = ts
	}
	return out
}

func cloneInsetMap(in map[token.InsetRole]AxisInset) map[token.InsetRole]AxisInset {
	out := make(map[token.InsetRole]AxisInset, len(in))
	for role, inset := range in {
		out[role] = inset
	}
	return out
}
