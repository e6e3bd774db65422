// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"github.com/koa/simple-layout/pix"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Linear lays out weighted children end to end along an axis.
//
// The extent of each child starts at its preferred value. When the
// available extent differs from the sum of preferences, the deficit
// or surplus is distributed among the children with nonzero weight,
// proportionally by weight, without moving any child outside its
// [Min, Max] range. A child with weight 0 always keeps its preferred
// extent, even if the run then overflows its rectangle.
type Linear struct {
	// Axis is the main axis, either Horizontal or Vertical.
	Axis Axis

	slots []slot
}

type slot struct {
	child  Placeable
	weight int
}

// HorizontalLayout returns a horizontal run seeded with first.
func HorizontalLayout(first Placeable, weight int) *Linear {
	l := &Linear{Axis: Horizontal}
	return l.Append(first, weight)
}

// VerticalLayout returns a vertical run seeded with first.
func VerticalLayout(first Placeable, weight int) *Linear {
	l := &Linear{Axis: Vertical}
	return l.Append(first, weight)
}

// Append adds child to the end of the run and returns l for
// chaining. The weight is the child's relative share of any surplus
// or deficit of space; weight 0 pins the child to its preferred
// extent.
func (l *Linear) Append(child Placeable, weight int) *Linear {
	l.slots = append(l.slots, slot{child: child, weight: weight})
	return l
}

// Size sums the main axis ranges of the children and merges their
// cross axis ranges fieldwise.
func (l *Linear) Size() Size {
	var main, cross Range
	for _, s := range l.slots {
		m, c := axisRanges(l.Axis, s.child.Size())
		main = main.AddRange(m)
		cross = cross.Union(c)
	}
	return axisSize(l.Axis, main, cross)
}

func (l *Linear) Draw(dst pix.Surface, pos image.Rectangle) (image.Point, error) {
	target := axisMain(l.Axis, pos.Size())
	crossExtent := axisCross(l.Axis, pos.Size())

	mains := make([]Range, len(l.slots))
	extents := make([]int, len(l.slots))
	var totalPref, totalMin, totalMax int
	for i, s := range l.slots {
		m, _ := axisRanges(l.Axis, s.child.Size())
		mains[i] = m
		extents[i] = m.Pref
		totalPref = sat(totalPref + m.Pref)
		totalMin = sat(totalMin + m.Min)
		totalMax = sat(totalMax + m.Max)
	}
	switch {
	case target < totalPref:
		if totalMin >= target {
			// Even the minimums overflow; clipping is accepted.
			for i := range extents {
				extents[i] = mains[i].Min
			}
		} else {
			l.distribute(extents, mains, totalPref-target, -1)
		}
	case target > totalPref:
		if totalMax <= target {
			for i := range extents {
				extents[i] = mains[i].Max
			}
		} else {
			l.distribute(extents, mains, target-totalPref, 1)
		}
	}

	mainOff := axisMain(l.Axis, pos.Min)
	crossOff := axisCross(l.Axis, pos.Min)
	end := pos.Min
	for i, s := range l.slots {
		min := axisPoint(l.Axis, mainOff, crossOff)
		place := image.Rectangle{
			Min: min,
			Max: min.Add(axisPoint(l.Axis, extents[i], crossExtent)),
		}
		p, err := s.child.Draw(dst, place)
		if err != nil {
			return end, err
		}
		end = p
		mainOff += extents[i]
	}
	return end, nil
}

// distribute spreads budget over the slots proportionally by weight,
// moving each extent toward its minimum (dir < 0) or maximum
// (dir > 0) without crossing it. Shares truncate toward zero and a
// slot may be pinned at its limit before absorbing its full share,
// so passes repeat, redistributing the leftover among the slots that
// still have headroom, until the budget is gone or a pass makes no
// progress.
func (l *Linear) distribute(extents []int, mains []Range, budget, dir int) {
	for budget > 0 {
		before := budget
		weightSum := 0
		for i, s := range l.slots {
			if s.weight > 0 && headroom(extents[i], mains[i], dir) > 0 {
				weightSum += s.weight
			}
		}
		if weightSum == 0 {
			// Shrink or grow limits reached; the residual budget
			// stays undistributed.
			return
		}
		for i, s := range l.slots {
			room := headroom(extents[i], mains[i], dir)
			if s.weight <= 0 || room <= 0 {
				continue
			}
			share := budget * s.weight / weightSum
			if share > room {
				share = room
			}
			extents[i] += dir * share
			budget -= share
			weightSum -= s.weight
		}
		if budget == before {
			return
		}
	}
}

// headroom reports how far extent may still move toward its limit.
func headroom(extent int, r Range, dir int) int {
	if dir < 0 {
		return extent - r.Min
	}
	return r.Max - extent
}

func axisPoint(a Axis, main, cross int) image.Point {
	if a == Horizontal {
		return image.Point{X: main, Y: cross}
	} else {
		return image.Point{X: cross, Y: main}
	}
}

func axisMain(a Axis, sz image.Point) int {
	if a == Horizontal {
		return sz.X
	} else {
		return sz.Y
	}
}

func axisCross(a Axis, sz image.Point) int {
	if a == Horizontal {
		return sz.Y
	} else {
		return sz.X
	}
}

func axisRanges(a Axis, s Size) (main, cross Range) {
	if a == Horizontal {
		return s.Width, s.Height
	} else {
		return s.Height, s.Width
	}
}

func axisSize(a Axis, main, cross Range) Size {
	if a == Horizontal {
		return Size{Width: main, Height: cross}
	} else {
		return Size{Width: cross, Height: main}
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
