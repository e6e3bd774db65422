// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"image"
	"testing"

	"github.com/koa/simple-layout/layout"
	"github.com/koa/simple-layout/pix"
)

func drawInto(t *testing.T, w layout.Placeable, r image.Rectangle) {
	t.Helper()
	rec := &pix.Recorder{Bounds: r}
	if _, err := w.Draw(rec, r); err != nil {
		t.Fatal(err)
	}
}

func TestAlignCenterOffset(t *testing.T) {
	// A fixed 5 wide element centered in 11 available pixels sits at
	// offset 3.
	f := fixed(5, 5)
	drawInto(t, layout.Center.Place(f), image.Rect(0, 0, 11, 5))
	if got := f.last().Min.X; got != 3 {
		t.Errorf("centered at x=%d, expected 3", got)
	}
	if got := f.last().Dx(); got != 5 {
		t.Errorf("extent %d, expected 5", got)
	}
}

func TestAlignExtentWithinRange(t *testing.T) {
	for _, d := range []layout.Direction{layout.NW, layout.N, layout.NE, layout.E,
		layout.SE, layout.S, layout.SW, layout.W, layout.Center} {
		for avail := 0; avail <= 30; avail++ {
			f := ranged(10, 5, 20)
			f.size.Height = layout.Range{Pref: 10, Min: 5, Max: 20}
			drawInto(t, d.Place(f), image.Rect(0, 0, avail, avail))
			got := f.last().Dx()
			switch {
			case avail >= 20 && got != 20:
				t.Fatalf("%v avail %d: extent %d, expected the maximum 20", d, avail, got)
			case avail >= 5 && (got < 5 || got > 20):
				t.Fatalf("%v avail %d: extent %d outside [5,20]", d, avail, got)
			case avail < 5 && got != 5:
				t.Fatalf("%v avail %d: extent %d, expected the minimum 5", d, avail, got)
			}
		}
	}
}

func TestAlignDirections(t *testing.T) {
	for _, tc := range []struct {
		dir layout.Direction
		exp image.Point
	}{
		{layout.NW, image.Pt(0, 0)},
		{layout.N, image.Pt(5, 0)},
		{layout.NE, image.Pt(10, 0)},
		{layout.E, image.Pt(10, 10)},
		{layout.SE, image.Pt(10, 20)},
		{layout.S, image.Pt(5, 20)},
		{layout.SW, image.Pt(0, 20)},
		{layout.W, image.Pt(0, 10)},
		{layout.Center, image.Pt(5, 10)},
	} {
		f := fixed(10, 10)
		drawInto(t, tc.dir.Place(f), image.Rect(0, 0, 20, 30))
		if got := f.last().Min; got != tc.exp {
			t.Errorf("%v: placed at %v, expected %v", tc.dir, got, tc.exp)
		}
	}
}

func TestAlignOverflow(t *testing.T) {
	// A child whose minimum exceeds the available space overflows
	// symmetrically when centered.
	f := fixed(11, 5)
	drawInto(t, layout.Center.Place(f), image.Rect(0, 0, 5, 5))
	if got := f.last().Min.X; got != -3 {
		t.Errorf("overflow offset %d, expected -3", got)
	}
	if got := f.last().Dx(); got != 11 {
		t.Errorf("overflow extent %d, expected the minimum 11", got)
	}
}

func TestAlignSizePassthrough(t *testing.T) {
	f := ranged(10, 5, 20)
	al := layout.S.Place(f)
	if got := al.Size(); got != f.size {
		t.Errorf("align size %v, expected the child's %v", got, f.size)
	}
}
