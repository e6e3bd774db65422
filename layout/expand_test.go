// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"image"
	"testing"

	"github.com/koa/simple-layout/layout"
)

func TestExpand(t *testing.T) {
	f := ranged(10, 5, 20)
	f.size.Height = layout.Range{Pref: 3, Min: 1, Max: 7}
	for _, tc := range []struct {
		name string
		w    layout.Placeable
		expW layout.Range
		expH layout.Range
	}{
		{
			name: "both axes",
			w:    layout.Expand(f),
			expW: layout.Range{Pref: 10, Min: 5, Max: layout.Unbounded},
			expH: layout.Range{Pref: 3, Min: 1, Max: layout.Unbounded},
		},
		{
			name: "horizontal only",
			w:    layout.ExpandHorizontal(f),
			expW: layout.Range{Pref: 10, Min: 5, Max: layout.Unbounded},
			expH: layout.Range{Pref: 3, Min: 1, Max: 7},
		},
		{
			name: "vertical only",
			w:    layout.ExpandVertical(f),
			expW: layout.Range{Pref: 10, Min: 5, Max: 20},
			expH: layout.Range{Pref: 3, Min: 1, Max: layout.Unbounded},
		},
	} {
		got := tc.w.Size()
		if got.Width != tc.expW || got.Height != tc.expH {
			t.Errorf("%s: size %v, expected %v/%v", tc.name, got, tc.expW, tc.expH)
		}
	}
}

func TestExpandDrawPassthrough(t *testing.T) {
	f := fixed(5, 5)
	r := image.Rect(3, 4, 30, 40)
	drawInto(t, layout.Expand(f), r)
	if f.last() != r {
		t.Errorf("expanded child drawn into %v, expected %v", f.last(), r)
	}
}
