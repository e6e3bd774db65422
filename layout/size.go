// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "math"

// Unbounded is the upper clamp for all range arithmetic. A Range
// whose Max is Unbounded accepts any extent a container offers.
const Unbounded = math.MaxInt32

// Range describes the acceptable extents of an element in a single
// dimension: the preferred extent plus the hard minimum and maximum
// it can be squeezed or stretched to.
//
// All arithmetic on Range saturates to [0, Unbounded] instead of
// wrapping. Min <= Pref <= Max is expected but not enforced;
// violating callers get well-defined, if degenerate, layouts.
type Range struct {
	Pref, Min, Max int
}

// ExactRange returns the Range satisfied only by v.
func ExactRange(v int) Range {
	return Range{Pref: v, Min: v, Max: v}
}

// Add returns r with v added to all three extents, saturating.
func (r Range) Add(v int) Range {
	return Range{
		Pref: sat(r.Pref + v),
		Min:  sat(r.Min + v),
		Max:  sat(r.Max + v),
	}
}

// AddRange returns the fieldwise sum of r and o, saturating.
func (r Range) AddRange(o Range) Range {
	return Range{
		Pref: sat(r.Pref + o.Pref),
		Min:  sat(r.Min + o.Min),
		Max:  sat(r.Max + o.Max),
	}
}

// Union returns the fieldwise maximum of r and o. It combines the
// cross axis requirements of stacked elements.
func (r Range) Union(o Range) Range {
	if o.Pref > r.Pref {
		r.Pref = o.Pref
	}
	if o.Min > r.Min {
		r.Min = o.Min
	}
	if o.Max > r.Max {
		r.Max = o.Max
	}
	return r
}

// Expanded returns r with its maximum dropped to Unbounded, keeping
// the preferred and minimum extents.
func (r Range) Expanded() Range {
	r.Max = Unbounded
	return r
}

// Size describes the acceptable sizes of an element.
type Size struct {
	Width, Height Range
}

// FixedSize returns the Size satisfied only by w×h.
func FixedSize(w, h int) Size {
	return Size{Width: ExactRange(w), Height: ExactRange(h)}
}

// Add returns s with dx added to the width extents and dy to the
// height extents, saturating.
func (s Size) Add(dx, dy int) Size {
	return Size{Width: s.Width.Add(dx), Height: s.Height.Add(dy)}
}

// Union returns the fieldwise maximum of s and o on both axes.
func (s Size) Union(o Size) Size {
	return Size{Width: s.Width.Union(o.Width), Height: s.Height.Union(o.Height)}
}

// Expanded returns s with the maxima of both axes dropped.
func (s Size) Expanded() Size {
	return Size{Width: s.Width.Expanded(), Height: s.Height.Expanded()}
}

// sat clamps v to [0, Unbounded].
func sat(v int) int {
	if v < 0 {
		return 0
	}
	if v > Unbounded {
		return Unbounded
	}
	return v
}
