package spec

import (
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/token"
)

// Default returns the bundled spec: every category fully populated.
func Default() Spec {
	return Spec{
		Version:    Version,
		Colors:     defaultColors(),
		Typography: defaultTypography(),
		Layout:     defaultLayout(),
		Visual:     defaultVisual(),
	}
}

// HighContrast returns the bundled high-contrast variant: the color
// category is replaced, every other category keeps its default.
func HighContrast() Spec {
	return New(WithColors(highContrastColors()))
}

func defaultColors() map[token.ColorRole]ColorPair {
	return map[token.ColorRole]ColorPair{
		token.ColorTextPrimary:     {Light: "#111827", Dark: "#F9FAFB"},
		token.ColorTextSecondary:   {Light: "#374151", Dark: "#D1D5DB"},
		token.ColorTextMuted:       {Light: "#6B7280", Dark: "#9CA3AF"},
		token.ColorPrimaryCTA:      {Light: "#4A6EF5", Dark: "#6E8BFF"},
		token.ColorOnPrimaryCTA:    {Light: "#F8FAFC", Dark: "#0B1120"},
		token.ColorSecondaryCTA:    {Light: "#E2E8F0", Dark: "#334155"},
		token.ColorDestructive:     {Light: "#DC2626", Dark: "#F87171"},
		token.ColorAccent:          {Light: "#A855F7", Dark: "#C084FC"},
		token.ColorSuccess:         {Light: "#16A34A", Dark: "#4ADE80"},
		token.ColorWarning:         {Light: "#CA8A04", Dark: "#FACC15"},
		token.ColorBackground:      {Light: "#F9FAFB", Dark: "#111827"},
		token.ColorSurfaceCard:     {Light: "#FFFFFF", Dark: "#1F2937"},
		token.ColorSurfaceElevated: {Light: "#FFFFFF", Dark: "#273449"},
		token.ColorSeparator:       {Light: "#E5E7EB80", Dark: "#37415180"},
	}
}

func highContrastColors() map[token.ColorRole]ColorPair {
	return map[token.ColorRole]ColorPair{
		token.ColorTextPrimary:     {Light: "#000000", Dark: "#FFFFFF"},
		token.ColorTextSecondary:   {Light: "#1F2937", Dark: "#E5E7EB"},
		token.ColorTextMuted:       {Light: "#374151", Dark: "#D1D5DB"},
		token.ColorPrimaryCTA:      {Light: "#1D4ED8", Dark: "#93C5FD"},
		token.ColorOnPrimaryCTA:    {Light: "#FFFFFF", Dark: "#000000"},
		token.ColorSecondaryCTA:    {Light: "#CBD5E1", Dark: "#475569"},
		token.ColorDestructive:     {Light: "#991B1B", Dark: "#FCA5A5"},
		token.ColorAccent:          {Light: "#6B21A8", Dark: "#D8B4FE"},
		token.ColorSuccess:         {Light: "#14532D", Dark: "#86EFAC"},
		token.ColorWarning:         {Light: "#713F12", Dark: "#FDE68A"},
		token.ColorBackground:      {Light: "#FFFFFF", Dark: "#000000"},
		token.ColorSurfaceCard:     {Light: "#FFFFFF", Dark: "#111827"},
		token.ColorSurfaceElevated: {Light: "#F9FAFB", Dark: "#1F2937"},
		token.ColorSeparator:       {Light: "#111827", Dark: "#F9FAFB"},
	}
}

func defaultTypography() map[token.TextRole]TextSpec {
	return map[token.TextRole]TextSpec{
		token.TextDisplayL: {
			Size: 34, Weight: token.WeightBold, Family: token.FamilyDefault,
			Anchor: token.AnchorLargeTitle, LineSpacing: 4, Color: token.ColorTextPrimary,
		},
		token.TextHeadlineL: {
			Size: 28, Weight: token.WeightBold, Family: token.FamilyDefault,
			Anchor: token.AnchorTitle, LineSpacing: 3, Color: token.ColorTextPrimary,
		},
		token.TextHeadlineM: {
			Size: 22, Weight: token.WeightSemibold, Family: token.FamilyDefault,
			Anchor: token.AnchorTitle, LineSpacing: 3, Color: token.ColorTextPrimary,
		},
		token.TextHeadlineS: {
			Size: 18, Weight: token.WeightSemibold, Family: token.FamilyDefault,
			Anchor: token.AnchorHeadline, LineSpacing: 2, Color: token.ColorTextPrimary,
		},
		token.TextTitle: {
			Size: 17, Weight: token.WeightSemibold, Family: token.FamilyDefault,
			Anchor: token.AnchorHeadline, LineSpacing: 2, Color: token.ColorTextPrimary,
		},
		token.TextBody: {
			Size: 17, Weight: token.WeightRegular, Family: token.FamilyDefault,
			Anchor: token.AnchorBody, LineSpacing: 2, Color: token.ColorTextPrimary,
		},
		token.TextBodyStrong: {
			Size: 17, Weight: token.WeightSemibold, Family: token.FamilyDefault,
			Anchor: token.AnchorBody, LineSpacing: 2, Color: token.ColorTextPrimary,
		},
		token.TextCallout: {
			Size: 16, Weight: token.WeightRegular, Family: token.FamilyDefault,
			Anchor: token.AnchorCallout, LineSpacing: 2, Color: token.ColorTextSecondary,
		},
		token.TextCaption: {
			Size: 12, Weight: token.WeightMedium, Family: token.FamilyDefault,
			Anchor: token.AnchorCaption, LineSpacing: 1, LetterSpacing: 0.3,
			Color: token.ColorTextMuted,
		},
		token.TextFootnote: {
			Size: 13, Weight: token.WeightRegular, Family: token.FamilyDefault,
			Anchor: token.AnchorFootnote, LineSpacing: 1, Color: token.ColorTextMuted,
		},
		token.TextButtonLabel: {
			Size: 16, Weight: token.WeightSemibold, Family: token.FamilyDefault,
			Anchor: token.AnchorCallout, LetterSpacing: 0.5, Uppercase: true,
			Color: token.ColorOnPrimaryCTA,
		},
		token.TextMono: {
			Size: 15, Weight: token.WeightRegular, Family: token.FamilyMonospaced,
			Anchor: token.AnchorBody, LineSpacing: 2, Color: token.ColorTextPrimary,
		},
	}
}

func defaultScale() Scale {
	return Scale{XS: 2, S: 4, M: 8, L: 12, XL: 16, XXL: 24}
}

func defaultLayout() Layout {
	// The three scales are distinct concerns that happen to share one
	// ramp by default.
	return Layout{
		Spacing:     defaultScale(),
		GridGap:     defaultScale(),
		TouchTarget: defaultScale(),
		Insets: map[token.InsetRole]AxisInset{
			token.InsetScreen:  {Horizontal: token.ScaleXL, Vertical: token.ScaleL},
			token.InsetCard:    {Horizontal: token.ScaleL, Vertical: token.ScaleM},
			token.InsetControl: {Horizontal: token.ScaleM, Vertical: token.ScaleS},
			token.InsetListRow: {Horizontal: token.ScaleL, Vertical: token.ScaleS},
		},
	}
}

func defaultVisual() Visual {
	return Visual{
		Radius: Radius{Small: 4, Medium: 8, Large: 16, Pill: 999},
		Shadow: Shadow{None: 0, Small: 2, Medium: 6},
	}
}
