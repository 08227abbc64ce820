package theme

import (
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/spec"
	"github.com/gentle-giraffe-apps/GentleDesignSystem/internal/token"
)

// Edges is a bitmask naming which container edges a caller wants resolved.
type Edges uint8

const (
	EdgeLeading Edges = 1 << iota
	EdgeTrailing
	EdgeTop
	EdgeBottom

	EdgesHorizontal = EdgeLeading | EdgeTrailing
	EdgesVertical   = EdgeTop | EdgeBottom
	EdgesAll        = EdgesHorizontal | EdgesVertical
)

// AxisValue is a resolved magnitude for one axis. Present distinguishes
// "filtered out, apply nothing" from an explicit zero in the spec.
type AxisValue struct {
	Value   float64
	Present bool
}

// Or returns the value, or the supplied default when the axis was
// filtered out.
func (v AxisValue) Or(def float64) float64 {
	if v.Present {
		return v.Value
	}
	return def
}

// Inset is the resolved per-axis padding for a container role.
type Inset struct {
	Horizontal AxisValue
	Vertical   AxisValue
}

// defaultInset is the hard-coded last resort when even the screen role is
// absent from the spec.
var defaultInset = spec.AxisInset{Horizontal: token.ScaleXL, Vertical: token.ScaleL}

// ResolveInset resolves a container role's edge padding. Chain: requested
// role, then screen, then a hard-coded (xl, l) pair; each axis token is
// looked up on the spacing ramp, then the edge filter decides which axes
// are reported present. Never fails.
func ResolveInset(s spec.Spec, role token.InsetRole, edges Edges) Inset {
	axisInset, ok := s.Layout.Insets[role]
	if !ok {
		axisInset, ok = s.Layout.Insets[token.InsetScreen]
	}
	if !ok {
		axisInset = defaultInset
	}

	var out Inset
	if edges&EdgesHorizontal != 0 {
		out.Horizontal = AxisValue{Value: s.Layout.Spacing.Value(axisInset.Horizontal), Present: true}
	}
	if edges&EdgesVertical != 0 {
		out.Vertical = AxisValue{Value: s.Layout.Spacing.Value(axisInset.Vertical), Present: true}
	}
	return out
}
