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

// FillRule selects how the interior of a polygon is determined.
type FillRule int

const (
	// NonZero fills points with a non-zero winding number.
	NonZero FillRule = iota
	// EvenOdd fills points crossed an odd number of times.
	EvenOdd
)

// span is one contiguous inside-region of a scanline, bounded by the
// crossings of its left and right boundary edges. Spans live only until
// the row has been filled.
type span struct {
	x0, x1      int32 // fixed-point extent
	left, right edgeIndex
}

// generateSpans applies the fill rule to the sorted crossings of one row
// and appends the resulting spans to r.spans. Crossings sharing the same
// x are evaluated as one group, so coincident vertices neither
// double-toggle parity nor split the winding sum.
func (r *Rasterizer) generateSpans(rule FillRule) {
	r.spans = r.spans[:0]
	if len(r.crossings) < 2 {
		return
	}
	if rule == EvenOdd {
		r.generateSpansEvenOdd()
	} else {
		r.generateSpansNonZero()
	}
}

func (r *Rasterizer) generateSpansEvenOdd() {
	c := r.crossings
	inside := false
	var openX int32
	var openEdge edgeIndex

	for i := 0; i < len(c); {
		x := c[i].x
		j := i
		for j < len(c) && c[j].x == x {
			j++
		}
		// A group of coincident crossings toggles parity by its count
		// mod 2.
		if (j-i)%2 == 1 {
			if !inside {
				inside = true
				openX = x
				openEdge = c[i].e
			} else {
				inside = false
				if x > openX {
					r.spans = append(r.spans, span{
						x0: openX, x1: x,
						left: openEdge, right: c[i].e,
					})
				}
			}
		}
		i = j
	}
	// A dangling open span means the crossing count was odd; the partial
	// span carries no well-defined right boundary and is dropped.
}

func (r *Rasterizer) generateSpansNonZero() {
	c := r.crossings
	edges := r.table.edges
	sum := 0
	var openX int32
	var openEdge edgeIndex

	for i := 0; i < len(c); {
		x := c[i].x
		j := i
		for j < len(c) && c[j].x == x {
			j++
		}
		group := c[i:j]

		delta := 0
		for _, cr := range group {
			delta += int(edges[cr.e].winding)
		}

		if sum == 0 && sum+delta != 0 {
			// Opening transition. The representative boundary edge must
			// be one whose own sign matches the transition direction, so
			// the coverage integral later sees a geometrically
			// meaningful edge even when several share this x.
			openX = x
			openEdge = pickRepresentative(edges, group, sgn(delta))
		} else if sum != 0 && sum+delta == 0 {
			right := pickRepresentative(edges, group, sgn(delta))
			if x > openX {
				r.spans = append(r.spans, span{
					x0: openX, x1: x,
					left: openEdge, right: right,
				})
			}
		}
		sum += delta
		i = j
	}

	if sum != 0 {
		// The winding sum must return to zero on every row that has
		// crossings; anything else means an unterminated contour.
		r.windingErr = true
	}
}

// pickRepresentative returns an edge from the group whose winding sign
// matches want; a non-zero net group contribution guarantees one exists.
func pickRepresentative(edges []edge, group []crossing, want int) edgeIndex {
	for _, cr := range group {
		if int(edges[cr.e].winding) == want {
			return cr.e
		}
	}
	return group[0].e
}

func sgn(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
