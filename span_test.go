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

// spanMachine builds a Rasterizer with hand-made edges and sorted
// crossings, bypassing the geometry stages.
func spanMachine(windings []int8, xs []int32, owners []edgeIndex) *Rasterizer {
	r := &Rasterizer{}
	for _, w := range windings {
		r.table.edges = append(r.table.edges, edge{winding: w})
	}
	for i, x := range xs {
		r.crossings = append(r.crossings, crossing{x: x, e: owners[i]})
	}
	return r
}

func TestSpansEvenOddSimple(t *testing.T) {
	r := spanMachine([]int8{1, -1}, []int32{100, 300}, []edgeIndex{0, 1})
	r.generateSpans(EvenOdd)
	if len(r.spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(r.spans))
	}
	sp := r.spans[0]
	if sp.x0 != 100 || sp.x1 != 300 || sp.left != 0 || sp.right != 1 {
		t.Errorf("span = %+v", sp)
	}
}

func TestSpansEvenOddCoincident(t *testing.T) {
	// Two crossings at the same x form one group: an even group must not
	// toggle parity.
	r := spanMachine([]int8{1, -1, 1, -1},
		[]int32{100, 200, 200, 400},
		[]edgeIndex{0, 1, 2, 3})
	r.generateSpans(EvenOdd)
	if len(r.spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(r.spans))
	}
	if sp := r.spans[0]; sp.x0 != 100 || sp.x1 != 400 {
		t.Errorf("span = [%d, %d), want [100, 400)", sp.x0, sp.x1)
	}

	// An odd group toggles exactly once.
	r = spanMachine([]int8{1, 1, 1, -1},
		[]int32{100, 100, 100, 400},
		[]edgeIndex{0, 1, 2, 3})
	r.generateSpans(EvenOdd)
	if len(r.spans) != 1 {
		t.Fatalf("odd group: got %d spans, want 1", len(r.spans))
	}
}

func TestSpansEvenOddDangling(t *testing.T) {
	// An odd number of effective crossings leaves a span without a right
	// boundary; it must be dropped, not extended to infinity.
	r := spanMachine([]int8{1, -1, 1},
		[]int32{100, 300, 500},
		[]edgeIndex{0, 1, 2})
	r.generateSpans(EvenOdd)
	if len(r.spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(r.spans))
	}
	if sp := r.spans[0]; sp.x1 != 300 {
		t.Errorf("span ends at %d, want 300", sp.x1)
	}
}

func TestSpansNonZeroNested(t *testing.T) {
	// Nested same-direction contours: the non-zero rule spans the whole
	// outer region.
	r := spanMachine([]int8{1, 1, -1, -1},
		[]int32{100, 200, 300, 400},
		[]edgeIndex{0, 1, 2, 3})
	r.generateSpans(NonZero)
	if len(r.spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(r.spans))
	}
	if sp := r.spans[0]; sp.x0 != 100 || sp.x1 != 400 {
		t.Errorf("span = [%d, %d), want [100, 400)", sp.x0, sp.x1)
	}
	if r.windingErr {
		t.Error("unexpected winding error")
	}
}

func TestSpansNonZeroHole(t *testing.T) {
	// Opposite-direction inner contour cuts a hole.
	r := spanMachine([]int8{1, -1, 1, -1},
		[]int32{100, 200, 300, 400},
		[]edgeIndex{0, 1, 2, 3})
	r.generateSpans(NonZero)
	if len(r.spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(r.spans))
	}
	if r.spans[0].x1 != 200 || r.spans[1].x0 != 300 {
		t.Errorf("spans = %+v", r.spans)
	}
}

func TestSpansNonZeroCoincidentGroup(t *testing.T) {
	// A canceling group at one x must neither open nor close a span.
	r := spanMachine([]int8{1, -1, 1, -1},
		[]int32{100, 250, 250, 400},
		[]edgeIndex{0, 1, 2, 3})
	r.generateSpans(NonZero)
	if len(r.spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(r.spans))
	}
	if sp := r.spans[0]; sp.x0 != 100 || sp.x1 != 400 {
		t.Errorf("span = [%d, %d), want [100, 400)", sp.x0, sp.x1)
	}
}

func TestSpansNonZeroRepresentative(t *testing.T) {
	// When several edges share the opening x, the chosen boundary edge
	// must have the transition's sign.
	r := spanMachine([]int8{-1, 1, 1, -1},
		[]int32{100, 100, 100, 400},
		[]edgeIndex{0, 1, 2, 3})
	r.generateSpans(NonZero)
	if len(r.spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(r.spans))
	}
	sp := r.spans[0]
	if w := r.table.edges[sp.left].winding; w != 1 {
		t.Errorf("left boundary winding = %d, want +1", w)
	}
	if w := r.table.edges[sp.right].winding; w != -1 {
		t.Errorf("right boundary winding = %d, want -1", w)
	}
}

func TestSpansNonZeroUnbalanced(t *testing.T) {
	// The winding sum does not return to zero: the row is flagged.
	r := spanMachine([]int8{1, 1, -1},
		[]int32{100, 200, 300},
		[]edgeIndex{0, 1, 2})
	r.generateSpans(NonZero)
	if !r.windingErr {
		t.Error("unbalanced winding not detected")
	}
	// The first balanced portion still yields no closed span here; the
	// sum never returns to zero, so the open span is dropped.
	if len(r.spans) != 0 {
		t.Errorf("got %d spans, want 0", len(r.spans))
	}
}

func TestSortCrossings(t *testing.T) {
	r := &Rasterizer{}
	// Large reversed input exercises the quicksort path.
	for i := 100; i > 0; i-- {
		r.crossings = append(r.crossings, crossing{x: int32(i * 7 % 97), e: edgeIndex(i)})
	}
	r.sortCrossings()
	for i := 1; i < len(r.crossings); i++ {
		if r.crossings[i-1].x > r.crossings[i].x {
			t.Fatalf("not sorted at %d", i)
		}
	}

	// Small input exercises insertion sort.
	r.crossings = r.crossings[:0]
	for _, x := range []int32{5, 3, 9, 1, 7} {
		r.crossings = append(r.crossings, crossing{x: x})
	}
	r.sortCrossings()
	for i := 1; i < len(r.crossings); i++ {
		if r.crossings[i-1].x > r.crossings[i].x {
			t.Fatalf("small input not sorted at %d", i)
		}
	}
}
