// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"math"

	"github.com/koa/simple-layout/layout"
	"github.com/koa/simple-layout/pix"
)

// Scale is a proportional indicator drawn as a row of 2×2 dots
// between two end markers. The share of lit dots approximates Value.
type Scale struct {
	// Value is the represented proportion, 0.0 to 1.0.
	Value float64
	Color color.Color
}

// Size is four pixels high and at least eleven wide; the width grows
// with the available space, fitting more dots.
func (s Scale) Size() layout.Size {
	return layout.Size{
		Width:  layout.ExactRange(11).Expanded(),
		Height: layout.ExactRange(4),
	}
}

func (s Scale) Draw(dst pix.Surface, pos image.Rectangle) (image.Point, error) {
	width := pos.Dx()
	if width < 5 || pos.Dy() < 3 {
		return pos.Min, nil
	}
	total := (width - 5) / 3
	xOffset := (width - total*3 - 4) / 2
	lit := int(math.Round(s.Value * float64(total)))
	if lit < 0 {
		lit = 0
	} else if lit > total {
		lit = total
	}
	cols := []int{1, total*3 + 3}
	for d := 0; d < lit; d++ {
		cols = append(cols, d*3+3, d*3+4)
	}
	pixels := make([]pix.Pixel, 0, 2*len(cols))
	for _, c := range cols {
		x := pos.Min.X + xOffset + c
		pixels = append(pixels,
			pix.Pixel{Point: image.Point{X: x, Y: pos.Min.Y + 1}, Color: s.Color},
			pix.Pixel{Point: image.Point{X: x, Y: pos.Min.Y + 2}, Color: s.Color},
		)
	}
	return pos.Min, dst.DrawPixels(pixels)
}
