// Package theme is the resolver layer: pure functions mapping a spec, a
// role and the runtime context (color scheme, accessibility text size)
// onto concrete rendering values. Nothing here holds state, blocks, or
// performs I/O; a broken spec degrades to documented defaults instead of
// failing the caller.
package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/spec"
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/token"
)

// Color is a resolved color with components normalized to the unit range.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// Black and White are the last-resort foregrounds.
var (
	Black = Color{R: 0, G: 0, B: 0, A: 1}
	White = Color{R: 1, G: 1, B: 1, A: 1}
)

// DecodeColor decodes a portable hex encoding: an optional leading '#'
// followed by exactly 6 hex digits (RGB, opaque) or exactly 8 (RGBA, in
// R,G,B,A byte order). Anything else yields opaque black: theme data is
// never allowed to crash rendering, so decoding degrades instead of
// failing.
func DecodeColor(raw string) Color {
	hex := strings.TrimPrefix(raw, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Black
	}

	bytes := make([]uint8, 0, 4)
	for i := 0; i < len(hex); i += 2 {
		b, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return Black
		}
		bytes = append(bytes, uint8(b))
	}

	c := Color{
		R: float64(bytes[0]) / 255,
		G: float64(bytes[1]) / 255,
		B: float64(bytes[2]) / 255,
		A: 1,
	}
	if len(bytes) == 4 {
		c.A = float64(bytes[3]) / 255
	}
	return c
}

// Hex re-encodes the color. Opaque colors encode as 6 digits so that
// decode/encode round-trips exactly; translucent colors carry the alpha
// byte.
func (c Color) Hex() string {
	r := componentByte(c.R)
	g := componentByte(c.G)
	b := componentByte(c.B)
	a := componentByte(c.A)

	if a == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}

func componentByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}

// ResolveColor looks up a color role and selects the variant for the
// requested scheme. A missing role substitutes the primary text pair, and
// failing that a scheme-appropriate plain foreground; the caller never
// sees an error.
func ResolveColor(s spec.Spec, role token.ColorRole, scheme token.Scheme) Color {
	pair, ok := s.Colors[role]
	if !ok {
		pair, ok = s.Colors[token.ColorTextPrimary]
	}
	if !ok {
		if scheme == token.SchemeDark {
			return White
		}
		return Black
	}

	if scheme == token.SchemeDark {
		return DecodeColor(pair.Dark)
	}
	return DecodeColor(pair.Light)
}
