// SPDX-License-Identifier: Unlicense OR MIT

package pix

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is an in-memory Surface backed by an NRGBA image. Writes
// outside its bounds are silently discarded.
type Image struct {
	img *image.NRGBA
}

// NewImage returns an Image covering r.
func NewImage(r image.Rectangle) *Image {
	return &Image{img: image.NewNRGBA(r)}
}

func (im *Image) BoundingBox() image.Rectangle {
	return im.img.Bounds()
}

func (im *Image) DrawPixels(pixels []Pixel) error {
	b := im.img.Bounds()
	for _, p := range pixels {
		if p.Point.In(b) {
			im.img.Set(p.Point.X, p.Point.Y, p.Color)
		}
	}
	return nil
}

// Clear fills the whole surface with c.
func (im *Image) Clear(c color.Color) {
	draw.Draw(im.img, im.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// At reports the color at (x, y).
func (im *Image) At(x, y int) color.Color {
	return im.img.At(x, y)
}

// Image exposes the backing image, for encoding or blitting to a
// display.
func (im *Image) Image() image.Image {
	return im.img
}
