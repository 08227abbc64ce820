package theme

import (
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/spec"
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/token"
)

// Gaps is a read-only projection over one spacing ramp, exposing the six
// raw magnitudes alongside the intent vocabulary mapped 1:1 onto
// (0, xs, s, m, l, xl, xxl). Purely a renaming layer: the underlying
// scale is always fully populated by construction, so there is no
// fallback logic here.
type Gaps struct {
	scale spec.Scale
}

// NewGaps wraps a spacing ramp.
func NewGaps(scale spec.Scale) Gaps {
	return Gaps{scale: scale}
}

// Token looks up a raw ramp magnitude.
func (g Gaps) Token(tok token.ScaleToken) float64 {
	return g.scale.Value(tok)
}

func (g Gaps) XS() float64  { return g.scale.XS }
func (g Gaps) S() float64   { return g.scale.S }
func (g Gaps) M() float64   { return g.scale.M }
func (g Gaps) L() float64   { return g.scale.L }
func (g Gaps) XL() float64  { return g.scale.XL }
func (g Gaps) XXL() float64 { return g.scale.XXL }

func (g Gaps) None() float64      { return 0 }
func (g Gaps) Micro() float64     { return g.scale.XS }
func (g Gaps) Tight() float64     { return g.scale.S }
func (g Gaps) Regular() float64   { return g.scale.M }
func (g Gaps) Ample() float64     { return g.scale.L }
func (g Gaps) Loose() float64     { return g.scale.XL }
func (g Gaps) Expansive() float64 { return g.scale.XXL }

// Intent maps the intent vocabulary onto the ramp. Unknown intents read
// as regular.
func (g Gaps) Intent(intent token.GapIntent) float64 {
	switch intent {
	case token.GapNone:
		return 0
	case token.GapMicro:
		return g.scale.XS
	case token.GapTight:
		return g.scale.S
	case token.GapRegular:
		return g.scale.M
	case token.GapAmple:
		return g.scale.L
	case token.GapLoose:
		return g.scale.XL
	case token.GapExpansive:
		return g.scale.XXL
	default:
		return g.scale.M
	}
}
