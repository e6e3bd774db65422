// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/koa/simple-layout/layout"
	"github.com/koa/simple-layout/pix"
)

// Fit scales an image to the rectangle it is placed in.
type Fit uint8

const (
	// Unscaled draws the source pixels one to one, cropped to the
	// placement rectangle.
	Unscaled Fit = iota
	// Contain scales the image as large as possible without
	// cropping, preserving the aspect ratio and centering the
	// result.
	Contain
	// Fill stretches the image to the placement rectangle exactly.
	Fill
)

// Image is an image leaf. Its preferred size is the source bounds;
// with a Fit other than Unscaled it also accepts any larger
// rectangle.
type Image struct {
	Src image.Image
	Fit Fit
}

func (im Image) Size() layout.Size {
	b := im.Src.Bounds()
	sz := layout.FixedSize(b.Dx(), b.Dy())
	if im.Fit != Unscaled {
		sz = sz.Expanded()
	}
	return sz
}

func (im Image) Draw(dst pix.Surface, pos image.Rectangle) (image.Point, error) {
	b := im.Src.Bounds()
	if pos.Empty() || b.Empty() {
		return pos.Min, nil
	}
	sw, sh := b.Dx(), b.Dy()
	switch im.Fit {
	case Contain:
		if sw*pos.Dy() > sh*pos.Dx() {
			sh = sh * pos.Dx() / sw
			sw = pos.Dx()
		} else {
			sw = sw * pos.Dy() / sh
			sh = pos.Dy()
		}
	case Fill:
		sw, sh = pos.Dx(), pos.Dy()
	}
	if sw <= 0 || sh <= 0 {
		return pos.Min, nil
	}
	src := im.Src
	if sw != b.Dx() || sh != b.Dy() {
		scaled := image.NewNRGBA(image.Rect(0, 0, sw, sh))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), im.Src, b, xdraw.Over, nil)
		src = scaled
		b = scaled.Bounds()
	}
	org := pos.Min
	if im.Fit == Contain {
		org = org.Add(image.Point{X: (pos.Dx() - sw) / 2, Y: (pos.Dy() - sh) / 2})
	}
	var pixels []pix.Pixel
	for y := 0; y < sh && y < pos.Dy(); y++ {
		for x := 0; x < sw && x < pos.Dx(); x++ {
			c := src.At(b.Min.X+x, b.Min.Y+y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			pixels = append(pixels, pix.Pixel{
				Point: org.Add(image.Point{X: x, Y: y}),
				Color: c,
			})
		}
	}
	return pos.Min, dst.DrawPixels(pixels)
}
