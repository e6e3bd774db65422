// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"github.com/koa/simple-layout/pix"
)

// Expand marks w as willing to take any extra space on both axes:
// the reported maxima are dropped to Unbounded while the preferred
// and minimum extents stay put. Drawing passes through unchanged.
func Expand(w Placeable) Placeable {
	return expandLayout{child: w, horizontal: true, vertical: true}
}

// ExpandHorizontal drops only the width maximum of w.
func ExpandHorizontal(w Placeable) Placeable {
	return expandLayout{child: w, horizontal: true}
}

// ExpandVertical drops only the height maximum of w.
func ExpandVertical(w Placeable) Placeable {
	return expandLayout{child: w, vertical: true}
}

type expandLayout struct {
	child                Placeable
	horizontal, vertical bool
}

func (e expandLayout) Size() Size {
	sz := e.child.Size()
	if e.horizontal {
		sz.Width = sz.Width.Expanded()
	}
	if e.vertical {
		sz.Height = sz.Height.Expanded()
	}
	return sz
}

func (e expandLayout) Draw(dst pix.Surface, pos image.Rectangle) (image.Point, error) {
	return e.child.Draw(dst, pos)
}
