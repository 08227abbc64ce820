package theme

import (
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/spec"
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/token"
)

// Theme binds a spec to its runtime context so call sites resolve tokens
// without threading scheme and size category through every call. It is a
// plain value and is replaced wholesale to change theme.
type Theme struct {
	Spec   spec.Spec
	Scheme token.Scheme
	Size   token.SizeCategory
	Scaler Scaler
}

// New binds a spec to a scheme and size category under the bundled
// scaler.
func New(s spec.Spec, scheme token.Scheme, size token.SizeCategory) Theme {
	return Theme{Spec: s, Scheme: scheme, Size: size, Scaler: DefaultScaler()}
}

// Default is the bundled spec in light mode at the system default text
// size.
func Default() Theme {
	return New(spec.Default(), token.SchemeLight, token.DefaultSizeCategory)
}

// WithScheme returns a copy bound to a different color scheme.
func (t Theme) WithScheme(scheme token.Scheme) Theme {
	t.Scheme = scheme
	return t
}

// WithSize returns a copy bound to a different size category.
func (t Theme) WithSize(size token.SizeCategory) Theme {
	t.Size = size
	return t
}

// Color resolves a color role under the bound scheme.
func (t Theme) Color(role token.ColorRole) Color {
	return ResolveColor(t.Spec, role, t.Scheme)
}

// Text resolves a text role under the bound size category.
func (t Theme) Text(role token.TextRole) ResolvedTextStyle {
	scaler := t.Scaler
	if scaler == nil {
		scaler = DefaultScaler()
	}
	return ResolveTextStyleWith(scaler, t.Spec, role, t.Size)
}

// Inset resolves a container role's edge padding.
func (t Theme) Inset(role token.InsetRole, edges Edges) Inset {
	return ResolveInset(t.Spec, role, edges)
}

// Radius looks up a corner radius token.
func (t Theme) Radius(tok token.RadiusToken) float64 {
	return t.Spec.Visual.Radius.Value(tok)
}

// Shadow looks up a shadow depth token.
func (t Theme) Shadow(tok token.ShadowToken) float64 {
	return t.Spec.Visual.Shadow.Value(tok)
}

// Gap projects the sibling-gap ramp.
func (t Theme) Gap() Gaps {
	return NewGaps(t.Spec.Layout.Spacing)
}

// GridGap projects the grid-cell gap ramp.
func (t Theme) GridGap() Gaps {
	return NewGaps(t.Spec.Layout.GridGap)
}

// TouchTarget projects the minimum touch-target ramp.
func (t Theme) TouchTarget() Gaps {
	return NewGaps(t.Spec.Layout.TouchTarget)
}
