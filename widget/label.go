// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/koa/simple-layout/layout"
	"github.com/koa/simple-layout/pix"
)

// Label is a text leaf. Lines are measured through an x/image font
// Face; the layout logic is agnostic to how the metrics are
// produced.
type Label struct {
	Text  string
	Face  font.Face
	Color color.Color
}

// Size reports a fixed size: the widest line by the summed line
// heights.
func (l Label) Size() layout.Size {
	m := l.Face.Metrics()
	var width, height int
	for _, line := range strings.Split(l.Text, "\n") {
		b, _ := font.BoundString(l.Face, line)
		if w := (b.Max.X - b.Min.X).Ceil(); w > width {
			width = w
		}
		height += m.Height.Ceil()
	}
	return layout.FixedSize(width, height)
}

func (l Label) Draw(dst pix.Surface, pos image.Rectangle) (image.Point, error) {
	if pos.Empty() {
		return pos.Min, nil
	}
	mask := image.NewAlpha(image.Rectangle{Max: image.Point{X: pos.Dx(), Y: pos.Dy()}})
	d := font.Drawer{
		Dst:  mask,
		Src:  image.NewUniform(color.Alpha{A: 0xff}),
		Face: l.Face,
	}
	m := l.Face.Metrics()
	baseline := m.Ascent
	for _, line := range strings.Split(l.Text, "\n") {
		b, _ := font.BoundString(l.Face, line)
		d.Dot = fixed.Point26_6{X: -b.Min.X, Y: baseline}
		d.DrawString(line)
		baseline += m.Height
	}
	var pixels []pix.Pixel
	for y := 0; y < pos.Dy(); y++ {
		for x := 0; x < pos.Dx(); x++ {
			if mask.AlphaAt(x, y).A >= 0x80 {
				pixels = append(pixels, pix.Pixel{
					Point: pos.Min.Add(image.Point{X: x, Y: y}),
					Color: l.Color,
				})
			}
		}
	}
	if err := dst.DrawPixels(pixels); err != nil {
		return pos.Min, err
	}
	// Cursor continuation: the end of the last line's baseline.
	end := pos.Min.Add(image.Point{X: d.Dot.X.Ceil(), Y: (baseline - m.Height).Ceil()})
	return end, nil
}
