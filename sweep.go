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

// crossing is one x-intersection of an active edge with the current
// scanline's pixel-center line.
type crossing struct {
	x int32
	e edgeIndex
}

// stepActive updates the active-edge set for scanline y: edges bucketed
// at y join, edges past their last active scanline leave, and every
// survivor gets its x-intersection for this row. The crossings buffer is
// filled with (x, edge) pairs, unsorted.
func (r *Rasterizer) stepActive(y int32) {
	t := &r.table
	edges := t.edges

	for ei := t.buckets[y]; ei != nilEdge; ei = edges[ei].next {
		r.active = append(r.active, ei)
	}

	r.crossings = r.crossings[:0]
	for i := 0; i < len(r.active); {
		ei := r.active[i]
		e := &edges[ei]
		if e.last <= y {
			// Swap-remove; order does not matter, the sort below
			// re-establishes it.
			r.active[i] = r.active[len(r.active)-1]
			r.active = r.active[:len(r.active)-1]
			continue
		}

		if y == e.first {
			// x was computed exactly at build time.
		} else if e.dxdy > subPixelScale || e.dxdy < -subPixelScale {
			// The incremental step sweeps more than one pixel per row;
			// re-evaluate from the line equation to avoid cumulative
			// drift on near-horizontal edges.
			e.x = e.xAtY(y<<subPixelShift + subPixelHalf)
		} else {
			e.x += e.dxdy
		}

		r.crossings = append(r.crossings, crossing{x: e.x, e: ei})
		i++
	}
}

// insertionSortThreshold is the crossing count up to which insertion sort
// beats quicksort.
const insertionSortThreshold = 16

// sortCrossings sorts crossings ascending by x. Small rows use insertion
// sort; larger ones an iterative quicksort with an explicit stack, so
// worst-case stack use stays bounded regardless of input.
func (r *Rasterizer) sortCrossings() {
	c := r.crossings
	if len(c) <= insertionSortThreshold {
		insertionSortCrossings(c)
		return
	}

	stack := r.sortStack[:0]
	stack = append(stack, 0, int32(len(c)-1))
	for len(stack) > 0 {
		hi := stack[len(stack)-1]
		lo := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		if hi-lo < insertionSortThreshold {
			insertionSortCrossings(c[lo : hi+1])
			continue
		}

		// Median-of-three pivot guards against sorted input.
		mid := lo + (hi-lo)/2
		if c[mid].x < c[lo].x {
			c[mid], c[lo] = c[lo], c[mid]
		}
		if c[hi].x < c[lo].x {
			c[hi], c[lo] = c[lo], c[hi]
		}
		if c[hi].x < c[mid].x {
			c[hi], c[mid] = c[mid], c[hi]
		}
		pivot := c[mid].x

		i, j := lo, hi
		for i <= j {
			for c[i].x < pivot {
				i++
			}
			for c[j].x > pivot {
				j--
			}
			if i <= j {
				c[i], c[j] = c[j], c[i]
				i++
				j--
			}
		}
		if lo < j {
			stack = append(stack, lo, j)
		}
		if i < hi {
			stack = append(stack, i, hi)
		}
	}
	r.sortStack = stack[:0]
}

func insertionSortCrossings(c []crossing) {
	for i := 1; i < len(c); i++ {
		k := c[i]
		j := i - 1
		for j >= 0 && c[j].x > k.x {
			c[j+1] = c[j]
			j--
		}
		c[j+1] = k
	}
}
