// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/koa/simple-layout/layout"
	"github.com/koa/simple-layout/pix"
)

// stub is a fixed-size element recording where it was drawn.
type stub struct {
	size  layout.Size
	rects []image.Rectangle
}

func (s *stub) Size() layout.Size {
	return s.size
}

func (s *stub) Draw(dst pix.Surface, pos image.Rectangle) (image.Point, error) {
	s.rects = append(s.rects, pos)
	return pos.Min, nil
}

func points(pixels []pix.Pixel) map[image.Point]bool {
	set := make(map[image.Point]bool, len(pixels))
	for _, p := range pixels {
		set[p.Point] = true
	}
	return set
}

func TestBorderedSize(t *testing.T) {
	on := color.White
	for _, tc := range []struct {
		name string
		dec  Decorator
		exp  layout.Size
	}{
		{"dashed", NewDashedLine(2, 2, on), layout.FixedSize(12, 12)},
		{"rounded", NewRoundedLine(on), layout.FixedSize(14, 14)},
	} {
		b := Bordered(&stub{size: layout.FixedSize(10, 10)}, tc.dec)
		if got := b.Size(); got != tc.exp {
			t.Errorf("%s: size %v, expected %v", tc.name, got, tc.exp)
		}
	}
}

func TestBorderedChildInset(t *testing.T) {
	child := &stub{size: layout.FixedSize(10, 10)}
	b := Bordered(child, NewRoundedLine(color.White))
	r := image.Rect(0, 0, 14, 14)
	rec := &pix.Recorder{Bounds: r}
	if _, err := b.Draw(rec, r); err != nil {
		t.Fatal(err)
	}
	if exp := image.Rect(2, 2, 12, 12); child.rects[0] != exp {
		t.Errorf("child drawn into %v, expected %v", child.rects[0], exp)
	}
}

func TestDashedLineCadence(t *testing.T) {
	// A 7×7 rectangle has a perimeter of 24 steps. With two dots
	// followed by two gaps, steps 0,1,4,5,… are painted, the cadence
	// running over the corners uninterrupted.
	d := NewDashedLine(2, 2, color.White)
	got := points(d.Outline(image.Rect(0, 0, 7, 7)))
	exp := []image.Point{
		{0, 0}, {1, 0}, // steps 0, 1
		{4, 0}, {5, 0}, // steps 4, 5
		{6, 2}, {6, 3}, // steps 8, 9
		{6, 6}, {5, 6}, // steps 12, 13
		{2, 6}, {1, 6}, // steps 16, 17
		{0, 4}, {0, 3}, // steps 20, 21
	}
	if len(got) != len(exp) {
		t.Fatalf("painted %d pixels, expected %d: %v", len(got), len(exp), got)
	}
	for _, p := range exp {
		if !got[p] {
			t.Errorf("step pixel %v not painted", p)
		}
	}
}

func TestDashedLineSolid(t *testing.T) {
	d := NewDashedLine(1, 0, color.White)
	if got := len(d.Outline(image.Rect(0, 0, 7, 7))); got != 24 {
		t.Errorf("solid outline painted %d pixels, expected the full perimeter of 24", got)
	}
}

func TestDashedLineDegenerate(t *testing.T) {
	d := NewDashedLine(2, 2, color.White)
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 0, 0),
		image.Rect(0, 0, 1, 1),
		image.Rect(0, 0, 5, 1),
	} {
		if got := d.Outline(r); got != nil {
			t.Errorf("outline of %v painted %d pixels, expected none", r, len(got))
		}
	}
}

func TestRoundedLine(t *testing.T) {
	l := NewRoundedLine(color.White)
	got := points(l.Outline(image.Rect(0, 0, 8, 6)))
	exp := []image.Point{
		// Top and bottom runs, stopping short of the corners.
		{2, 0}, {3, 0}, {4, 0}, {5, 0},
		{2, 5}, {3, 5}, {4, 5}, {5, 5},
		// Left and right runs.
		{0, 2}, {0, 3},
		{7, 2}, {7, 3},
		// Corner pixels, one step diagonally inward.
		{1, 1}, {6, 1}, {6, 4}, {1, 4},
	}
	if len(got) != len(exp) {
		t.Fatalf("painted %d pixels, expected %d: %v", len(got), len(exp), got)
	}
	for _, p := range exp {
		if !got[p] {
			t.Errorf("pixel %v not painted", p)
		}
	}
}

func TestRoundedLineDegenerate(t *testing.T) {
	l := NewRoundedLine(color.White)
	if got := l.Outline(image.Rect(0, 0, 4, 4)); got != nil {
		t.Errorf("outline painted %d pixels on a degenerate rectangle", len(got))
	}
}

type failSurface struct {
	err error
}

func (s failSurface) BoundingBox() image.Rectangle {
	return image.Rect(0, 0, 100, 100)
}

func (s failSurface) DrawPixels(pixels []pix.Pixel) error {
	return s.err
}

func TestBorderedErrorStopsChild(t *testing.T) {
	errWrite := errors.New("surface gone")
	child := &stub{size: layout.FixedSize(10, 10)}
	b := Bordered(child, NewDashedLine(2, 2, color.White))
	if _, err := b.Draw(failSurface{err: errWrite}, image.Rect(0, 0, 12, 12)); !errors.Is(err, errWrite) {
		t.Fatalf("expected surface error, got %v", err)
	}
	if len(child.rects) != 0 {
		t.Error("child drawn after the border failed to paint")
	}
}
