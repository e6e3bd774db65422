// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"

	"github.com/koa/simple-layout/layout"
	"github.com/koa/simple-layout/pix"
)

// Icon is a leaf rendering IconVG data at a fixed pixel width.
type Icon struct {
	Color color.RGBA

	src []byte
	sz  int

	// Cached rasterization.
	img      *image.RGBA
	imgSize  int
	imgColor color.RGBA
}

// NewIcon returns a new Icon from IconVG data, rasterized sz pixels
// wide.
func NewIcon(data []byte, sz int) (*Icon, error) {
	_, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, err
	}
	return &Icon{src: data, sz: sz, Color: color.RGBA{A: 0xff}}, nil
}

func (ic *Icon) Size() layout.Size {
	m, _ := iconvg.DecodeMetadata(ic.src)
	dx, dy := m.ViewBox.AspectRatio()
	return layout.FixedSize(ic.sz, int(float32(ic.sz)*dy/dx))
}

func (ic *Icon) Draw(dst pix.Surface, pos image.Rectangle) (image.Point, error) {
	img := ic.image()
	b := img.Bounds()
	var pixels []pix.Pixel
	for y := 0; y < b.Dy() && y < pos.Dy(); y++ {
		for x := 0; x < b.Dx() && x < pos.Dx(); x++ {
			c := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
			if c.A == 0 {
				continue
			}
			pixels = append(pixels, pix.Pixel{
				Point: pos.Min.Add(image.Point{X: x, Y: y}),
				Color: c,
			})
		}
	}
	return pos.Min, dst.DrawPixels(pixels)
}

func (ic *Icon) image() *image.RGBA {
	if ic.img != nil && ic.imgSize == ic.sz && ic.imgColor == ic.Color {
		return ic.img
	}
	m, _ := iconvg.DecodeMetadata(ic.src)
	dx, dy := m.ViewBox.AspectRatio()
	img := image.NewRGBA(image.Rectangle{Max: image.Point{X: ic.sz, Y: int(float32(ic.sz) * dy / dx)}})
	var ico iconvg.Rasterizer
	ico.SetDstImage(img, img.Bounds(), draw.Src)
	m.Palette[0] = ic.Color
	iconvg.Decode(&ico, ic.src, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	})
	ic.img = img
	ic.imgSize = ic.sz
	ic.imgColor = ic.Color
	return ic.img
}
