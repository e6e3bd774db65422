// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"github.com/koa/simple-layout/pix"
)

// Alignment is the placement rule on a single axis.
type Alignment uint8

const (
	Start Alignment = iota
	Middle
	End
)

// Direction is the alignment of an element relative to its
// available space.
type Direction uint8

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	Center
)

// Place wraps w so that it is positioned according to d inside
// whatever rectangle it is drawn into.
func (d Direction) Place(w Placeable) Align {
	return Align{Direction: d, Child: w}
}

// Align positions its child inside a larger rectangle. It reports
// the child's size unchanged; only the placement differs.
type Align struct {
	Direction Direction
	Child     Placeable
}

func (al Align) Size() Size {
	return al.Child.Size()
}

func (al Align) Draw(dst pix.Surface, pos image.Rectangle) (image.Point, error) {
	sz := al.Child.Size()
	dx, w := place(al.Direction.horizontal(), pos.Dx(), sz.Width)
	dy, h := place(al.Direction.vertical(), pos.Dy(), sz.Height)
	min := pos.Min.Add(image.Point{X: dx, Y: dy})
	return al.Child.Draw(dst, image.Rectangle{
		Min: min,
		Max: min.Add(image.Point{X: w, Y: h}),
	})
}

// place resolves one axis: the offset of the child inside the
// available extent and the extent the child is given. A child whose
// maximum fits gets its maximum; a child whose minimum does not fit
// gets its minimum and overflows, symmetrically for Middle; anything
// in between fills the available extent exactly.
func place(a Alignment, available int, r Range) (offset, extent int) {
	switch {
	case r.Max < available:
		extent = r.Max
	case r.Min > available:
		extent = r.Min
	default:
		return 0, available
	}
	switch a {
	case Middle:
		offset = (available - extent) / 2
	case End:
		offset = available - extent
	}
	return offset, extent
}

func (d Direction) horizontal() Alignment {
	switch d {
	case NW, W, SW:
		return Start
	case NE, E, SE:
		return End
	default:
		return Middle
	}
}

func (d Direction) vertical() Alignment {
	switch d {
	case NW, N, NE:
		return Start
	case SW, S, SE:
		return End
	default:
		return Middle
	}
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case Middle:
		return "Middle"
	case End:
		return "End"
	default:
		panic("unreachable")
	}
}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case Center:
		return "Center"
	default:
		panic("unreachable")
	}
}
