// seehuhn.de/go/scanline - an antialiased polygon rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scanline

import "testing"

func TestRoundDiv(t *testing.T) {
	cases := []struct {
		n, d, want int64
	}{
		{0, 4, 0},
		{5, 2, 3},
		{-5, 2, -3},
		{3, 2, 2},
		{-3, 2, -2},
		{7, 3, 2},
		{8, 3, 3},
		{5, -2, -3},
		{-5, -2, 3},
	}
	for _, c := range cases {
		if got := roundDiv(c.n, c.d); got != c.want {
			t.Errorf("roundDiv(%d, %d) = %d, want %d", c.n, c.d, got, c.want)
		}
	}
}

func TestFixedCeil(t *testing.T) {
	cases := []struct {
		v, want int32
	}{
		{0, 0},
		{1, 1},
		{255, 1},
		{256, 1},
		{257, 2},
		{-1, 0},
		{-256, -1},
		{-255, 0},
	}
	for _, c := range cases {
		if got := fixedCeil(c.v); got != c.want {
			t.Errorf("fixedCeil(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestAddEdgeSkipsFlat(t *testing.T) {
	tab := newEdgeTable(16)
	tab.addEdge(1, 5, 10, 5, false)
	tab.addEdge(1, 5, 10, 5.02, false) // below flat threshold
	if len(tab.edges) != 0 {
		t.Fatalf("flat edges not skipped: %d edges", len(tab.edges))
	}
	tab.addEdge(1, 5, 10, 6, false)
	if len(tab.edges) != 1 {
		t.Fatalf("sloped edge skipped: %d edges", len(tab.edges))
	}
}

func TestAddEdgeNormalization(t *testing.T) {
	tab := newEdgeTable(16)
	tab.addEdge(4, 10, 6, 2, false) // upward in vertex order
	if len(tab.edges) != 1 {
		t.Fatalf("got %d edges", len(tab.edges))
	}
	e := &tab.edges[0]
	if e.y0 >= e.y1 {
		t.Errorf("endpoints not normalized: y0=%d y1=%d", e.y0, e.y1)
	}
	if e.winding != -1 {
		t.Errorf("winding = %d, want -1", e.winding)
	}
	if e.a >= 0 {
		t.Errorf("line coefficient a = %d, want negative", e.a)
	}
}

func TestEdgeScanlineRange(t *testing.T) {
	const height = 16
	tab := newEdgeTable(height)
	tab.addEdge(2, -5, 4, 25, false) // extends past both canvas edges
	tab.addEdge(1, 3.2, 8, 7.9, false)
	for i := range tab.edges {
		e := &tab.edges[i]
		if e.first < 0 || e.last > height || e.first >= e.last {
			t.Errorf("edge %d: scanline range [%d, %d) invalid", i, e.first, e.last)
		}
	}
	if tab.yMin < 0 || tab.yMax > height || tab.yMin >= tab.yMax {
		t.Errorf("table range [%d, %d) invalid", tab.yMin, tab.yMax)
	}
}

func TestEdgeBuckets(t *testing.T) {
	tab := newEdgeTable(32)
	tab.build([]float64{
		2, 2, 20, 5, 25, 28, 4, 22,
	}, nil, false)

	// Every edge must be reachable from the bucket of its first scanline.
	for i := range tab.edges {
		found := false
		for ei := tab.buckets[tab.edges[i].first]; ei != nilEdge; ei = tab.edges[ei].next {
			if ei == edgeIndex(i) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("edge %d not in bucket %d", i, tab.edges[i].first)
		}
	}
}

func TestBuildBadMetadata(t *testing.T) {
	verts := []float64{10, 50, 32, 10, 54, 50}

	good := newEdgeTable(64)
	good.build(verts, nil, false)

	bad := newEdgeTable(64)
	bad.build(verts, []int{2, 2}, false) // sum does not match vertex count

	if len(good.edges) == 0 {
		t.Fatal("no edges from triangle")
	}
	if len(bad.edges) != len(good.edges) {
		t.Errorf("bad metadata produced %d edges, single-contour fallback has %d",
			len(bad.edges), len(good.edges))
	}
}

func TestXAtYExact(t *testing.T) {
	tab := newEdgeTable(16)
	tab.addEdge(0, 0, 10, 10, false)
	e := &tab.edges[0]
	// The supporting line is x == y.
	for _, y := range []int32{0, 128, 256, 1000, 2560} {
		if got := e.xAtY(y); got != y {
			t.Errorf("xAtY(%d) = %d, want %d", y, got, y)
		}
	}
}

func TestTableReset(t *testing.T) {
	tab := newEdgeTable(16)
	tab.build([]float64{1, 1, 9, 2, 5, 9}, nil, false)
	if len(tab.edges) == 0 {
		t.Fatal("no edges built")
	}
	tab.reset()
	if len(tab.edges) != 0 {
		t.Errorf("edges not cleared")
	}
	for y, b := range tab.buckets {
		if b != nilEdge {
			t.Errorf("bucket %d not cleared", y)
		}
	}
}
