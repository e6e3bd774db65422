// SPDX-License-Identifier: Unlicense OR MIT

package pix

import "image"

// Recorder is a Surface that retains every pixel written to it, in
// write order. It is useful in tests and for post-processing a frame
// before it reaches a display.
type Recorder struct {
	// Bounds is the area reported by BoundingBox.
	Bounds image.Rectangle
	// Pixels are the recorded writes.
	Pixels []Pixel
}

func (r *Recorder) BoundingBox() image.Rectangle {
	return r.Bounds
}

func (r *Recorder) DrawPixels(pixels []Pixel) error {
	r.Pixels = append(r.Pixels, pixels...)
	return nil
}

// Reset discards the recorded pixels.
func (r *Recorder) Reset() {
	r.Pixels = r.Pixels[:0]
}
