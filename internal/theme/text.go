package theme

import (
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/spec"
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/token"
)

// ResolvedTextStyle packages everything the presentation layer needs to
// render a text role: the accessibility-scaled size plus the role's
// weight, family, spacing and color metadata. This core never renders
// glyphs.
type ResolvedTextStyle struct {
	Size          float64
	Weight        token.FontWeight
	Family        token.FontFamily
	Width         token.FontWidth
	LineSpacing   float64
	LetterSpacing float64
	Uppercase     bool
	Color         token.ColorRole
}

// fallbackTextSpec is the last resort when neither the requested role nor
// the body role is present in the spec.
func fallbackTextSpec() spec.TextSpec {
	return spec.TextSpec{
		Size:        17,
		Weight:      token.WeightRegular,
		Family:      token.FamilyDefault,
		Anchor:      token.AnchorBody,
		LineSpacing: 2,
		Color:       token.ColorTextPrimary,
	}
}

// ResolveTextStyle resolves a text role under the bundled scaler.
func ResolveTextStyle(s spec.Spec, role token.TextRole, category token.SizeCategory) ResolvedTextStyle {
	return ResolveTextStyleWith(DefaultScaler(), s, role, category)
}

// ResolveTextStyleWith resolves a text role, scaling the nominal size
// with the supplied Scaler. Fallback chain: requested role, then the body
// role, then a hard-coded default. The anchor of whichever record wins
// the fallback selects the scaling curve.
func ResolveTextStyleWith(scaler Scaler, s spec.Spec, role token.TextRole, category token.SizeCategory) ResolvedTextStyle {
	ts, ok := s.Typography[role]
	if !ok {
		ts, ok = s.Typography[token.TextBody]
	}
	if !ok {
		ts = fallbackTextSpec()
	}

	return ResolvedTextStyle{
		Size:          scaler.Scale(ts.Anchor, ts.Size, category),
		Weight:        ts.Weight,
		Family:        ts.Family,
		Width:         ts.Width,
		LineSpacing:   ts.LineSpacing,
		LetterSpacing: ts.LetterSpacing,
		Uppercase:     ts.Uppercase,
		Color:         ts.Color,
	}
}
