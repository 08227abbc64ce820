// Package spec defines the serializable design-token specification: the
// complete, versioned description of every visual decision (color,
// typography, layout, radii, shadows) a theme can make. A Spec carries no
// resolution logic; it is constructed once, treated as immutable, and
// replaced wholesale to change theme.
package spec

import (
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/token"
)

// Version is the semantic version of the current spec schema. It tags
// serialized specs for future migration decisions; it is not enforced at
// resolution time.
const Version = "1.0.0"

// Spec is the top-level token aggregate. Every category is present on any
// constructed Spec; individual role lookups inside a category may miss
// and fall back at resolution time.
type Spec struct {
	Version    string                        `yaml:"specVersion" validate:"required,semver"`
	Colors     map[token.ColorRole]ColorPair `yaml:"colors" validate:"required,min=1,dive"`
	Typography map[token.TextRole]TextSpec   `yaml:"typography" validate:"required,min=1,dive"`
	Layout     Layout                        `yaml:"layout" validate:"required"`
	Visual     Visual                        `yaml:"visual" validate:"required"`
}

// ColorPair stores the light and dark variants of a color role as
// portable hex encodings (6-digit RGB or 8-digit RGBA).
type ColorPair struct {
	Light string `yaml:"light" validate:"required,hexpair"`
	Dark  string `yaml:"dark" validate:"required,hexpair"`
}

// TextSpec describes one text role. Size is the nominal point size before
// accessibility scaling; Anchor names the semantic category whose scaling
// curve applies.
type TextSpec struct {
	Size          float64          `yaml:"size" validate:"required,gt=0"`
	Weight        token.FontWeight `yaml:"weight" validate:"required,oneof=light regular medium semibold bold"`
	Family        token.FontFamily `yaml:"family" validate:"required,oneof=default serif rounded monospaced"`
	Width         token.FontWidth  `yaml:"width,omitempty" validate:"omitempty,oneof=standard condensed expanded"`
	Anchor        token.SizeAnchor `yaml:"anchor" validate:"required,oneof=largeTitle title headline body callout subheadline footnote caption"`
	LineSpacing   float64          `yaml:"lineSpacing"`
	LetterSpacing float64          `yaml:"letterSpacing"`
	Uppercase     bool             `yaml:"uppercase,omitempty"`
	Color         token.ColorRole  `yaml:"color" validate:"required"`
}

// Scale is a six-step ordered ramp of magnitudes. The ramp is expected to
// be monotonic; the codec validator asserts it, construction does not.
type Scale struct {
	XS  float64 `yaml:"xs"`
	S   float64 `yaml:"s"`
	M   float64 `yaml:"m"`
	L   float64 `yaml:"l"`
	XL  float64 `yaml:"xl"`
	XXL float64 `yaml:"xxl"`
}

// Value looks up a ramp token. Unrecognized tokens resolve to the middle
// magnitude so inset resolution never fails.
func (s Scale) Value(tok token.ScaleToken) float64 {
	switch tok {
	case token.ScaleXS:
		return s.XS
	case token.ScaleS:
		return s.S
	case token.ScaleM:
		return s.M
	case token.ScaleL:
		return s.L
	case token.ScaleXL:
		return s.XL
	case token.ScaleXXL:
		return s.XXL
	default:
		return s.M
	}
}

// Monotonic reports whether the ramp is non-decreasing xs through xxl.
func (s Scale) Monotonic() bool {
	values := []float64{s.XS, s.S, s.M, s.L, s.XL, s.XXL}
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}

// AxisInset maps a container role to one ramp token per axis. Insets
// reference tokens rather than raw numbers so every inset re-ranks
// together when the underlying scale changes.
type AxisInset struct {
	Horizontal token.ScaleToken `yaml:"horizontal" validate:"required,scaletoken"`
	Vertical   token.ScaleToken `yaml:"vertical" validate:"required,scaletoken"`
}

// Layout groups the spacing concerns. Spacing, GridGap and TouchTarget
// are logically distinct scales even though the defaults back all three
// with the same six numbers.
type Layout struct {
	Spacing     Scale                         `yaml:"spacing"`
	GridGap     Scale                         `yaml:"gridGap"`
	TouchTarget Scale                         `yaml:"touchTarget"`
	Insets      map[token.InsetRole]AxisInset `yaml:"insets" validate:"required,min=1,dive"`
}

// Radius holds the corner-radius tokens. Referenced directly, no role
// indirection.
type Radius struct {
	Small  float64 `yaml:"small"`
	Medium float64 `yaml:"medium"`
	Large  float64 `yaml:"large"`
	Pill   float64 `yaml:"pill"`
}

// Value looks up a radius token, defaulting to the medium magnitude.
func (r Radius) Value(tok token.RadiusToken) float64 {
	switch tok {
	case token.RadiusSmall:
		return r.Small
	case token.RadiusMedium:
		return r.Medium
	case token.RadiusLarge:
		return r.Large
	case token.RadiusPill:
		return r.Pill
	default:
		return r.Medium
	}
}

// Shadow holds the shadow-depth tokens.
type Shadow struct {
	None   float64 `yaml:"none"`
	Small  float64 `yaml:"small"`
	Medium float64 `yaml:"medium"`
}

// Value looks up a shadow token, defaulting to no shadow.
func (s Shadow) Value(tok token.ShadowToken) float64 {
	switch tok {
	case token.ShadowSmall:
		return s.Small
	case token.ShadowMedium:
		return s.Medium
	default:
		return s.None
	}
}

// Visual groups the flat numeric token records.
type Visual struct {
	Radius Radius `yaml:"radius"`
	Shadow Shadow `yaml:"shadow"`
}
