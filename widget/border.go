// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"

	"github.com/koa/simple-layout/layout"
	"github.com/koa/simple-layout/pix"
)

// Decorator maps the outline rectangle of a bordered element to the
// pixels of a boundary pattern. Width is the number of pixels the
// pattern reserves on every edge.
type Decorator interface {
	Width() int
	Outline(r image.Rectangle) []pix.Pixel
}

// Bordered reserves an inset band of dec.Width() pixels around child
// and paints the decorator pattern into it.
func Bordered(child layout.Placeable, dec Decorator) layout.Placeable {
	return bordered{child: child, dec: dec}
}

type bordered struct {
	child layout.Placeable
	dec   Decorator
}

func (b bordered) Size() layout.Size {
	w := 2 * b.dec.Width()
	return b.child.Size().Add(w, w)
}

func (b bordered) Draw(dst pix.Surface, pos image.Rectangle) (image.Point, error) {
	if err := dst.DrawPixels(b.dec.Outline(pos)); err != nil {
		return pos.Min, err
	}
	return b.child.Draw(dst, pos.Inset(b.dec.Width()))
}

// DashedLine is a one pixel dashed border. The dash cadence walks
// the perimeter clockwise from the top-left corner as one continuous
// index sequence; it is not reset at corners. A pixel is painted iff
// index mod (DotCount+GapCount) < DotCount; a non-positive cadence
// paints a solid line.
type DashedLine struct {
	DotCount, GapCount int
	Color              color.Color
}

// NewDashedLine returns a DashedLine with the given cadence.
func NewDashedLine(dotCount, gapCount int, col color.Color) DashedLine {
	return DashedLine{DotCount: dotCount, GapCount: gapCount, Color: col}
}

func (d DashedLine) Width() int {
	return 1
}

func (d DashedLine) Outline(r image.Rectangle) []pix.Pixel {
	if r.Dx() < 2 || r.Dy() < 2 {
		return nil
	}
	cadence := d.DotCount + d.GapCount
	sx, sy := r.Min.X, r.Min.Y
	ex, ey := r.Max.X-1, r.Max.Y-1
	var pixels []pix.Pixel
	idx := 0
	emit := func(x, y int) {
		if cadence <= 0 || idx%cadence < d.DotCount {
			pixels = append(pixels, pix.Pixel{Point: image.Point{X: x, Y: y}, Color: d.Color})
		}
		idx++
	}
	for x := sx; x < ex; x++ {
		emit(x, sy)
	}
	for y := sy; y < ey; y++ {
		emit(ex, y)
	}
	for x := ex; x > sx; x-- {
		emit(x, ey)
	}
	for y := ey; y > sy; y-- {
		emit(sx, y)
	}
	return pixels
}

// RoundedLine is a two pixel border approximating a rounded
// rectangle with a 2px corner radius: the straight runs stop two
// pixels short of each corner and a single pixel set diagonally
// inward cuts each corner.
type RoundedLine struct {
	Color color.Color
}

// NewRoundedLine returns a RoundedLine in the given color.
func NewRoundedLine(col color.Color) RoundedLine {
	return RoundedLine{Color: col}
}

func (l RoundedLine) Width() int {
	return 2
}

func (l RoundedLine) Outline(r image.Rectangle) []pix.Pixel {
	if r.Dx() < 5 || r.Dy() < 5 {
		return nil
	}
	sx, sy := r.Min.X, r.Min.Y
	ex, ey := r.Max.X-1, r.Max.Y-1
	var pixels []pix.Pixel
	put := func(x, y int) {
		pixels = append(pixels, pix.Pixel{Point: image.Point{X: x, Y: y}, Color: l.Color})
	}
	for x := sx + 2; x <= ex-2; x++ {
		put(x, sy)
		put(x, ey)
	}
	for y := sy + 2; y <= ey-2; y++ {
		put(sx, y)
		put(ex, y)
	}
	put(sx+1, sy+1)
	put(ex-1, sy+1)
	put(ex-1, ey-1)
	put(sx+1, ey-1)
	return pixels
}
