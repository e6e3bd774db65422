// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pix defines the pixel-addressed drawing surface that layout
elements render into, together with in-memory implementations for
off-screen rendering and testing.

A Surface accepts batches of colored pixels. It is deliberately
narrow: the layout engine never inspects colors and never reads
pixels back, so a Surface may buffer, transform or clip writes as it
sees fit. The error returned by DrawPixels is opaque to the engine
and propagated verbatim to the caller of the outermost draw.
*/
package pix

import (
	"image"
	"image/color"
)

// Pixel associates a color with a point on a surface.
type Pixel struct {
	Point image.Point
	Color color.Color
}

// Surface is a pixel-addressed draw target.
type Surface interface {
	// BoundingBox reports the drawable area of the surface.
	BoundingBox() image.Rectangle
	// DrawPixels writes a batch of pixels to the surface.
	DrawPixels(pixels []Pixel) error
}

// Offset returns a Surface whose writes are translated by off before
// reaching dst.
func Offset(dst Surface, off image.Point) Surface {
	return &offsetSurface{dst: dst, off: off}
}

type offsetSurface struct {
	dst Surface
	off image.Point
}

func (s *offsetSurface) BoundingBox() image.Rectangle {
	return s.dst.BoundingBox().Sub(s.off)
}

func (s *offsetSurface) DrawPixels(pixels []Pixel) error {
	translated := make([]Pixel, len(pixels))
	for i, p := range pixels {
		translated[i] = Pixel{Point: p.Point.Add(s.off), Color: p.Color}
	}
	return s.dst.DrawPixels(translated)
}
