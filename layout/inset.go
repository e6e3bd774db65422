// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"github.com/koa/simple-layout/pix"
)

// Inset adjusts the placement of its child by signed per-edge
// offsets. Positive values reserve space around the child; negative
// values let the child bleed outward, which compensates for
// whitespace built into glyph metrics.
type Inset struct {
	Top, Right, Bottom, Left int
	Child                    Placeable
}

// Padding wraps w with the given edge offsets.
func Padding(w Placeable, top, right, bottom, left int) Inset {
	return Inset{Top: top, Right: right, Bottom: bottom, Left: left, Child: w}
}

// UniformPadding wraps w with the same offset on all edges.
func UniformPadding(w Placeable, v int) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v, Child: w}
}

func (in Inset) Size() Size {
	sz := in.Child.Size()
	return Size{
		Width:  sz.Width.Add(in.Left + in.Right),
		Height: sz.Height.Add(in.Top + in.Bottom),
	}
}

func (in Inset) Draw(dst pix.Surface, pos image.Rectangle) (image.Point, error) {
	w := pos.Dx() - in.Left - in.Right
	if w < 0 {
		w = 0
	}
	h := pos.Dy() - in.Top - in.Bottom
	if h < 0 {
		h = 0
	}
	min := pos.Min.Add(image.Point{X: in.Left, Y: in.Top})
	return in.Child.Draw(dst, image.Rectangle{
		Min: min,
		Max: min.Add(image.Point{X: w, Y: h}),
	})
}
