package theme

import (
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/token"
)

// Scaler turns a nominal point size into an accessibility-adjusted size.
// Implementations must be deterministic and monotonic non-decreasing in
// the size category, with an identity multiplier at the system default
// category. The anchor, not the text role, selects the curve, so every
// role sharing an anchor scales identically.
type Scaler interface {
	Scale(anchor token.SizeAnchor, size float64, category token.SizeCategory) float64
}

// TableScaler is the reference Scaler: a per-anchor multiplier table
// indexed by the category's position in the ramp.
type TableScaler struct {
	curves map[token.SizeAnchor][]float64
}

// DefaultScaler returns the bundled scaling tables. Display anchors grow
// more gently than reading anchors, mirroring how platform text engines
// treat large styles at accessibility sizes.
func DefaultScaler() *TableScaler {
	return &TableScaler{
		curves: map[token.SizeAnchor][]float64{
			token.AnchorLargeTitle:  {0.92, 0.96, 0.98, 1.00, 1.04, 1.08, 1.15, 1.25, 1.40, 1.55},
			token.AnchorTitle:       {0.91, 0.95, 0.98, 1.00, 1.05, 1.09, 1.17, 1.28, 1.45, 1.60},
			token.AnchorHeadline:    {0.90, 0.95, 0.97, 1.00, 1.05, 1.10, 1.20, 1.32, 1.50, 1.70},
			token.AnchorBody:        {0.88, 0.94, 0.97, 1.00, 1.06, 1.12, 1.24, 1.40, 1.65, 1.90},
			token.AnchorCallout:     {0.89, 0.94, 0.97, 1.00, 1.06, 1.12, 1.22, 1.38, 1.60, 1.85},
			token.AnchorSubheadline: {0.88, 0.93, 0.97, 1.00, 1.06, 1.13, 1.25, 1.42, 1.68, 1.95},
			token.AnchorFootnote:    {0.87, 0.93, 0.96, 1.00, 1.07, 1.14, 1.27, 1.45, 1.70, 2.00},
			token.AnchorCaption:     {0.86, 0.92, 0.96, 1.00, 1.08, 1.15, 1.28, 1.47, 1.75, 2.05},
		},
	}
}

// Scale applies the anchor's curve to the nominal size. Unknown anchors
// use the body curve; unknown categories rank at the system default.
func (t *TableScaler) Scale(anchor token.SizeAnchor, size float64, category token.SizeCategory) float64 {
	curve, ok := t.curves[anchor]
	if !ok {
		curve = t.curves[token.AnchorBody]
	}

	index := category.Index()
	if index >= len(curve) {
		index = len(curve) - 1
	}
	return size * curve[index]
}
