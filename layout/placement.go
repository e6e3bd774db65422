// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"sync"

	"github.com/koa/simple-layout/pix"
)

// Placement records where an element was last drawn, for mapping
// pointer or touch events back onto elements.
type Placement struct {
	Rect  image.Rectangle
	Valid bool
}

// ObservePlacement wraps w so that fn is called with the resolved
// rectangle every time w is drawn. The callback is guarded by a
// non-blocking lock: a re-entrant draw of the same observed node
// skips the update instead of blocking or failing the draw.
func ObservePlacement(fn func(image.Rectangle), w Placeable) Placeable {
	return &observed{fn: fn, child: w}
}

// RecordPlacement wraps w so that target tracks the rectangle w was
// last drawn into.
func RecordPlacement(target *Placement, w Placeable) Placeable {
	return ObservePlacement(func(r image.Rectangle) {
		*target = Placement{Rect: r, Valid: true}
	}, w)
}

type observed struct {
	mu    sync.Mutex
	fn    func(image.Rectangle)
	child Placeable
}

func (o *observed) Size() Size {
	return o.child.Size()
}

func (o *observed) Draw(dst pix.Surface, pos image.Rectangle) (image.Point, error) {
	if o.mu.TryLock() {
		o.fn(pos)
		o.mu.Unlock()
	}
	return o.child.Draw(dst, pos)
}
