// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout arranges trees of placeable elements into
pixel-addressed rectangles on a drawing surface.

Every element reports its space requirement as a Range per axis: a
preferred extent plus the minimum and maximum it can be squeezed or
stretched to. Containers negotiate how to divide the actually
available rectangle among their children, shrinking or growing them
when the available space differs from the sum of preferences.

A tree is built by nesting constructors and drawn in a single pass;
no state is retained between frames.
*/
package layout

import (
	"image"

	"github.com/koa/simple-layout/pix"
)

// Placeable is an element that reports a size requirement and
// renders itself into a rectangle.
//
// Size must be side-effect free and callable any number of times,
// before or after drawing. Draw paints only within pos (plus any
// inset the element declares) and returns the end point of its
// primary write cursor, for cursor-following composition. Callers
// may pass a pos smaller or larger than the reported size; the
// element must produce a best-effort clamped result rather than
// fail. The only permitted error is one returned by the surface,
// propagated verbatim.
type Placeable interface {
	Size() Size
	Draw(dst pix.Surface, pos image.Rectangle) (image.Point, error)
}

// Empty is the absent element. It reports zero size and draws
// nothing, so conditionally present elements can be composed without
// branching at the call site.
type Empty struct{}

func (Empty) Size() Size {
	return Size{}
}

func (Empty) Draw(dst pix.Surface, pos image.Rectangle) (image.Point, error) {
	return pos.Min, nil
}

// Spacer is a blank element of fixed size, for keeping space open
// between siblings.
type Spacer struct {
	Width, Height int
}

func (s Spacer) Size() Size {
	return FixedSize(s.Width, s.Height)
}

func (s Spacer) Draw(dst pix.Surface, pos image.Rectangle) (image.Point, error) {
	return pos.Min, nil
}
