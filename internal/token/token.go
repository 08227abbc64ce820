// Package token defines the closed role vocabularies used to index the
// design spec. Every role is a stable string identifier: the serialized
// form of a role is its name, never an ordinal, so stored specs survive
// roles being added in later schema versions.
package token

// Scheme selects which variant of a color pair applies.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// ParseScheme maps a raw string onto a recognized scheme. Anything other
// than "dark" resolves to light; "auto" resolution is the context
// provider's job and never reaches this layer.
func ParseScheme(raw string) Scheme {
	if raw == string(SchemeDark) {
		return SchemeDark
	}
	return SchemeLight
}

// SizeCategory is the user's preferred text-size setting. Categories form
// an ordered ramp; Index reports the position used by scaling curves.
type SizeCategory string

const (
	SizeXSmall         SizeCategory = "xSmall"
	SizeSmall          SizeCategory = "small"
	SizeMedium         SizeCategory = "medium"
	SizeLarge          SizeCategory = "large"
	SizeXLarge         SizeCategory = "xLarge"
	SizeXXLarge        SizeCategory = "xxLarge"
	SizeXXXLarge       SizeCategory = "xxxLarge"
	SizeAccessibility1 SizeCategory = "accessibility1"
	SizeAccessibility2 SizeCategory = "accessibility2"
	SizeAccessibility3 SizeCategory = "accessibility3"
)

// DefaultSizeCategory is the system default text size.
const DefaultSizeCategory = SizeLarge

var sizeCategoryOrder = []SizeCategory{
	SizeXSmall,
	SizeSmall,
	SizeMedium,
	SizeLarge,
	SizeXLarge,
	SizeXXLarge,
	SizeXXXLarge,
	SizeAccessibility1,
	SizeAccessibility2,
	SizeAccessibility3,
}

// SizeCategories returns the ordered ramp, smallest first.
func SizeCategories() []SizeCategory {
	out := make([]SizeCategory, len(sizeCategoryOrder))
	copy(out, sizeCategoryOrder)
	return out
}

// Index reports the category's position in the ramp. The category set is
// expected to grow, so unknown values report the default position.
func (c SizeCategory) Index() int {
	for i, known := range sizeCategoryOrder {
		if known == c {
			return i
		}
	}
	return DefaultSizeCategory.Index()
}

// SizeAnchor names the semantic text category a text role scales relative
// to. Many roles may share one anchor; the anchor, not the role, selects
// the scaling curve.
type SizeAnchor string

const (
	AnchorLargeTitle  SizeAnchor = "largeTitle"
	AnchorTitle       SizeAnchor = "title"
	AnchorHeadline    SizeAnchor = "headline"
	AnchorBody        SizeAnchor = "body"
	AnchorCallout     SizeAnchor = "callout"
	AnchorSubheadline SizeAnchor = "subheadline"
	AnchorFootnote    SizeAnchor = "footnote"
	AnchorCaption     SizeAnchor = "caption"
)

// TextRole identifies a typography token.
type TextRole string

const (
	TextDisplayL    TextRole = "display_l"
	TextHeadlineL   TextRole = "headline_l"
	TextHeadlineM   TextRole = "headline_m"
	TextHeadlineS   TextRole = "headline_s"
	TextTitle       TextRole = "title"
	TextBody        TextRole = "body"
	TextBodyStrong  TextRole = "body_strong"
	TextCallout     TextRole = "callout"
	TextCaption     TextRole = "caption"
	TextFootnote    TextRole = "footnote"
	TextButtonLabel TextRole = "button_label"
	TextMono        TextRole = "mono"
)

// ColorRole identifies a color token.
type ColorRole string

const (
	ColorTextPrimary     ColorRole = "textPrimary"
	ColorTextSecondary   ColorRole = "textSecondary"
	ColorTextMuted       ColorRole = "textMuted"
	ColorPrimaryCTA      ColorRole = "primaryCTA"
	ColorOnPrimaryCTA    ColorRole = "onPrimaryCTA"
	ColorSecondaryCTA    ColorRole = "secondaryCTA"
	ColorDestructive     ColorRole = "destructive"
	ColorAccent          ColorRole = "accent"
	ColorSuccess         ColorRole = "success"
	ColorWarning         ColorRole = "warning"
	ColorBackground      ColorRole = "background"
	ColorSurfaceCard     ColorRole = "surfaceCard"
	ColorSurfaceElevated ColorRole = "surfaceElevated"
	ColorSeparator       ColorRole = "separator"
)

// ButtonRole identifies a button treatment.
type ButtonRole string

const (
	ButtonPrimary     ButtonRole = "primary"
	ButtonSecondary   ButtonRole = "secondary"
	ButtonTertiary    ButtonRole = "tertiary"
	ButtonDestructive ButtonRole = "destructive"
)

// SurfaceRole identifies a container surface treatment.
type SurfaceRole string

const (
	SurfaceBackground SurfaceRole = "background"
	SurfaceCard       SurfaceRole = "card"
	SurfaceElevated   SurfaceRole = "elevated"
)

// InsetRole identifies a semantic container whose edge padding is themed.
type InsetRole string

const (
	InsetScreen  InsetRole = "screen"
	InsetCard    InsetRole = "card"
	InsetControl InsetRole = "control"
	InsetListRow InsetRole = "listRow"
)

// ScaleToken names a magnitude on the six-step spacing ramp.
type ScaleToken string

const (
	ScaleXS  ScaleToken = "xs"
	ScaleS   ScaleToken = "s"
	ScaleM   ScaleToken = "m"
	ScaleL   ScaleToken = "l"
	ScaleXL  ScaleToken = "xl"
	ScaleXXL ScaleToken = "xxl"
)

// ScaleTokens returns the ramp tokens in ascending order.
func ScaleTokens() []ScaleToken {
	return []ScaleToken{ScaleXS, ScaleS, ScaleM, ScaleL, ScaleXL, ScaleXXL}
}

// GapIntent is the intent vocabulary layered 1:1 over the spacing ramp.
type GapIntent string

const (
	GapNone      GapIntent = "none"
	GapMicro     GapIntent = "micro"
	GapTight     GapIntent = "tight"
	GapRegular   GapIntent = "regular"
	GapAmple     GapIntent = "ample"
	GapLoose     GapIntent = "loose"
	GapExpansive GapIntent = "expansive"
)

// FontWeight is a closed weight vocabulary.
type FontWeight string

const (
	WeightLight    FontWeight = "light"
	WeightRegular  FontWeight = "regular"
	WeightMedium   FontWeight = "medium"
	WeightSemibold FontWeight = "semibold"
	WeightBold     FontWeight = "bold"
)

// FontFamily is a family intent, not a concrete font name; the
// presentation layer maps it onto whatever the platform provides.
type FontFamily string

const (
	FamilyDefault    FontFamily = "default"
	FamilySerif      FontFamily = "serif"
	FamilyRounded    FontFamily = "rounded"
	FamilyMonospaced FontFamily = "monospaced"
)

// FontWidth is an optional width intent.
type FontWidth string

const (
	WidthStandard  FontWidth = "standard"
	WidthCondensed FontWidth = "condensed"
	WidthExpanded  FontWidth = "expanded"
)

// RadiusToken identifies a corner radius magnitude.
type RadiusToken string

const (
	RadiusSmall  RadiusToken = "small"
	RadiusMedium RadiusToken = "medium"
	RadiusLarge  RadiusToken = "large"
	RadiusPill   RadiusToken = "pill"
)

// ShadowToken identifies a shadow depth.
type ShadowToken string

const (
	ShadowNone   ShadowToken = "none"
	ShadowSmall  ShadowToken = "small"
	ShadowMedium ShadowToken = "medium"
)
