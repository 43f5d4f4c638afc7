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

// The two-edge analytic integral assumes a simple boundary. For
// self-intersecting input, boundary pixels switch to a sampled
// point-in-polygon grid evaluated against the fill rule, followed by a
// cleanup pass for two known sampling artifacts.

const (
	// dentThreshold is the minimum coverage gap for an isolated local
	// minimum at a near-horizontal join to be raised to its lesser
	// neighbor.
	dentThreshold = 16

	// islandMaxLen is the longest run of partial-coverage pixels between
	// two full-coverage pixels that is snapped to full coverage.
	islandMaxLen = 3
)

// selfIntersects reports whether any two edges of the current polygon
// properly intersect. Segments sharing an endpoint are excluded; the
// check runs once per DrawPolygon call.
func (r *Rasterizer) selfIntersects() bool {
	edges := r.table.edges
	for i := range edges {
		ei := &edges[i]
		for j := i + 1; j < len(edges); j++ {
			ej := &edges[j]
			if sharesEndpoint(ei, ej) {
				continue
			}
			if properIntersect(ei, ej) {
				return true
			}
		}
	}
	return false
}

func sharesEndpoint(a, b *edge) bool {
	return (a.x0 == b.x0 && a.y0 == b.y0) ||
		(a.x0 == b.x1 && a.y0 == b.y1) ||
		(a.x1 == b.x0 && a.y1 == b.y0) ||
		(a.x1 == b.x1 && a.y1 == b.y1)
}

// crossSign returns the sign of the cross product (b-a)×(c-a).
func crossSign(ax, ay, bx, by, cx, cy int32) int {
	v := (int64(bx)-int64(ax))*(int64(cy)-int64(ay)) -
		(int64(by)-int64(ay))*(int64(cx)-int64(ax))
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func properIntersect(a, b *edge) bool {
	d1 := crossSign(b.x0, b.y0, b.x1, b.y1, a.x0, a.y0)
	d2 := crossSign(b.x0, b.y0, b.x1, b.y1, a.x1, a.y1)
	d3 := crossSign(a.x0, a.y0, a.x1, a.y1, b.x0, b.y0)
	d4 := crossSign(a.x0, a.y0, a.x1, a.y1, b.x1, b.y1)
	return d1 != 0 && d2 != 0 && d3 != 0 && d4 != 0 &&
		d1 != d2 && d3 != d4
}

// sampleInside evaluates the fill rule at one fixed-point sample location
// by accumulating crossings of every edge whose y-range contains the
// sample.
func (r *Rasterizer) sampleInside(sx, sy int32, rule FillRule) bool {
	winding := 0
	crossings := 0
	for i := range r.table.edges {
		e := &r.table.edges[i]
		if e.y0 > sy || sy >= e.y1 {
			continue
		}
		// The sample lies right of the line exactly when the evaluation
		// is negative.
		s := int64(e.a)*int64(sx) + int64(e.b)*int64(sy) + e.c
		if s < 0 {
			winding += int(e.winding)
			crossings++
		}
	}
	if rule == EvenOdd {
		return crossings%2 == 1
	}
	return winding != 0
}

// sampleCoverage estimates the coverage of pixel (col, y) from an N×N
// grid of fill-rule evaluations.
func (r *Rasterizer) sampleCoverage(col int, y int32, rule FillRule) uint8 {
	n := int32(r.quality.SampleGrid)
	px := int32(col) << subPixelShift
	py := y << subPixelShift
	inside := 0
	for j := int32(0); j < n; j++ {
		sy := py + (2*j+1)*subPixelScale/(2*n)
		for i := int32(0); i < n; i++ {
			sx := px + (2*i+1)*subPixelScale/(2*n)
			if r.sampleInside(sx, sy, rule) {
				inside++
			}
		}
	}
	return clamp255(roundDiv(int64(inside)*255, int64(n)*int64(n)))
}

// writeSampled records sampled boundary coverage for one pixel into the
// row buffer, mixed with the analytic estimate by the configured weight.
// Adjacent spans may touch the same boundary pixel; the sampled value
// measures whole-pixel coverage, so the larger value wins.
func (r *Rasterizer) writeSampled(col int, y int32, rule FillRule, analytic uint8) {
	m := r.quality.FallbackMix
	sampled := r.sampleCoverage(col, y, rule)
	v := uint8((m*int(sampled) + (256-m)*int(analytic) + 128) >> 8)
	if v > r.rowCov[col] {
		r.rowCov[col] = v
	}
	r.touchRow(col, col+1)
}

// writeSampledSolid marks [x0, x1) of the row buffer as fully covered.
func (r *Rasterizer) writeSampledSolid(x0, x1 int) {
	if x0 < 0 {
		x0 = 0
	}
	if x1 > r.width {
		x1 = r.width
	}
	if x0 >= x1 {
		return
	}
	for x := x0; x < x1; x++ {
		r.rowCov[x] = 255
	}
	r.touchRow(x0, x1)
}

func (r *Rasterizer) touchRow(x0, x1 int) {
	if x0 < r.rowLo {
		r.rowLo = x0
	}
	if x1 > r.rowHi {
		r.rowHi = x1
	}
}

// flushSampledRow cleans up the sampled row and blends it into the
// framebuffer. Two artifacts are repaired: isolated coverage dents at
// near-horizontal joins, and short partial-coverage islands between two
// fully covered pixels.
func (r *Rasterizer) flushSampledRow(y int32, argb uint32) {
	lo, hi := r.rowLo, r.rowHi
	r.rowLo, r.rowHi = r.width, 0
	if lo >= hi {
		return
	}
	cov := r.rowCov

	// A local minimum strictly below both neighbors by more than the
	// threshold is raised to the lesser neighbor.
	for x := lo + 1; x < hi-1; x++ {
		c := cov[x]
		l, rr := cov[x-1], cov[x+1]
		m := l
		if rr < m {
			m = rr
		}
		if c < l && c < rr && m-c > dentThreshold {
			cov[x] = m
		}
	}

	// Partial runs of length <= islandMaxLen between two full-coverage
	// pixels snap to full coverage.
	for x := lo; x < hi; x++ {
		if cov[x] != 255 {
			continue
		}
		run := 0
		k := x + 1
		for k < hi && cov[k] > 0 && cov[k] < 255 && run <= islandMaxLen {
			run++
			k++
		}
		if run >= 1 && run <= islandMaxLen && k < hi && cov[k] == 255 {
			for i := x + 1; i < k; i++ {
				cov[i] = 255
			}
			x = k - 1
		}
	}

	for x := lo; x < hi; x++ {
		if cov[x] > 0 {
			r.fb.blend(x, int(y), argb, uint32(cov[x]))
			cov[x] = 0
		}
	}
}
