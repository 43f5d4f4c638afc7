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

import "math"

// Fixed-point geometry. All internal arithmetic uses integer coordinates
// scaled by subPixelScale, so the per-scanline sweep is drift-free and
// needs no floating point.
const (
	subPixelShift = 8
	subPixelScale = 1 << subPixelShift
	subPixelHalf  = subPixelScale / 2

	// flatEdgeThreshold is the minimum |Δy| in subpixels for an edge to
	// contribute coverage. Shorter near-horizontal micro-edges cause
	// 1-subpixel artifacts and are suppressed.
	flatEdgeThreshold = 8
)

// edgeIndex identifies an edge within a Rasterizer's edge arena. Indices
// are never valid across arenas.
type edgeIndex int32

const nilEdge edgeIndex = -1

// edge is one non-horizontal contour segment, immutable once built except
// for x, which the sweep advances row by row.
type edge struct {
	x0, y0 int32 // fixed-point endpoints, normalized so y0 <= y1
	x1, y1 int32

	first int32 // first active scanline
	last  int32 // last active scanline, exclusive

	x    int32 // x at the current scanline's pixel center
	dxdy int32 // x change per scanline, rounded

	// Implicit line coefficients: a*x + b*y + c == 0 on the supporting
	// line, with a = y0-y1 < 0, so a point with positive evaluation lies
	// left of the line.
	a, b int32
	c    int64

	winding int8 // +1 or -1, from the pre-normalization vertex order

	dir    uint8 // quantized direction id (LUT refinement only)
	invLen int32 // 2^30 / ‖(a,b)‖ (LUT refinement only)

	next edgeIndex // bucket chain link
}

// edgeTable is an arena of edges bucketed by first active scanline.
// Buckets are singly linked through edge.next, so building is O(E) with
// no sorting pass.
type edgeTable struct {
	edges   []edge
	buckets []edgeIndex // one head per scanline
	yMin    int32       // first scanline with any edge
	yMax    int32       // last scanline with any edge, exclusive
}

func newEdgeTable(height int) edgeTable {
	buckets := make([]edgeIndex, height)
	for i := range buckets {
		buckets[i] = nilEdge
	}
	return edgeTable{
		buckets: buckets,
		yMin:    int32(height),
	}
}

func (t *edgeTable) reset() {
	for y := t.yMin; y < t.yMax; y++ {
		t.buckets[y] = nilEdge
	}
	t.edges = t.edges[:0]
	t.yMin = int32(len(t.buckets))
	t.yMax = 0
}

func toFixed(v float64) int32 {
	return int32(math.Round(v * subPixelScale))
}

// fixedCeil returns ceil(v / subPixelScale) for any sign of v.
func fixedCeil(v int32) int32 {
	return (v + subPixelScale - 1) >> subPixelShift
}

// roundDiv divides with rounding half away from zero.
func roundDiv(n, d int64) int64 {
	if d < 0 {
		n, d = -n, -d
	}
	if n >= 0 {
		return (n + d/2) / d
	}
	return -((-n + d/2) / d)
}

// xAtY evaluates the edge's supporting line at the fixed-point y
// coordinate, exactly.
func (e *edge) xAtY(y int32) int32 {
	return int32(roundDiv(-(int64(e.b)*int64(y) + e.c), int64(e.a)))
}

// addEdge converts one contour segment to fixed point and inserts it into
// the bucket of its first active scanline. Horizontal and sub-threshold
// segments are discarded; so are segments whose clipped scanline range is
// empty.
func (t *edgeTable) addEdge(fx0, fy0, fx1, fy1 float64, withLUT bool) {
	x0, y0 := toFixed(fx0), toFixed(fy0)
	x1, y1 := toFixed(fx1), toFixed(fy1)

	dy := y1 - y0
	if dy > -flatEdgeThreshold && dy < flatEdgeThreshold {
		return
	}

	// Winding sign comes from the original vertex order; normalization
	// below does not change it.
	winding := int8(1)
	if dy < 0 {
		winding = -1
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	// First and last active scanlines: the smallest y whose pixel center
	// lies at or below the corresponding endpoint, clipped to the buffer.
	first := fixedCeil(y0 - subPixelHalf)
	last := fixedCeil(y1 - subPixelHalf)
	if first < 0 {
		first = 0
	}
	height := int32(len(t.buckets))
	if last > height {
		last = height
	}
	if first >= last {
		return
	}

	dx64 := int64(x1 - x0)
	dy64 := int64(y1 - y0)

	// x at the first active scanline's pixel center, by exact
	// interpolation, and the per-scanline increment, rounded rather than
	// truncated to minimize long-run drift.
	centerY := first<<subPixelShift + subPixelHalf
	x := int32(int64(x0) + roundDiv(int64(centerY-y0)*dx64, dy64))
	dxdy := int32(roundDiv(dx64<<subPixelShift, dy64))

	e := edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		first:   first,
		last:    last,
		x:       x,
		dxdy:    dxdy,
		a:       y0 - y1,
		b:       x1 - x0,
		c:       int64(x0)*int64(y1) - int64(x1)*int64(y0),
		winding: winding,
		next:    t.buckets[first],
	}
	if withLUT {
		e.dir = quantizeDirection(e.a, e.b)
		norm := math.Sqrt(float64(dx64)*float64(dx64) + float64(dy64)*float64(dy64))
		e.invLen = int32(math.Round(float64(int64(1)<<30) / norm))
	}

	t.buckets[first] = edgeIndex(len(t.edges))
	t.edges = append(t.edges, e)

	if first < t.yMin {
		t.yMin = first
	}
	if last > t.yMax {
		t.yMax = last
	}
}

// build converts the vertex buffer into the edge table. Contour metadata
// that is inconsistent with the buffer length falls back to treating the
// whole buffer as a single contour; this is never a hard failure.
func (t *edgeTable) build(vertices []float64, contourCounts []int, withLUT bool) {
	n := len(vertices) / 2
	if n < 3 {
		return
	}

	counts := contourCounts
	if !countsConsistent(counts, n) {
		counts = nil
	}

	if counts == nil {
		t.addContour(vertices, withLUT)
		return
	}
	offset := 0
	for _, c := range counts {
		t.addContour(vertices[2*offset:2*(offset+c)], withLUT)
		offset += c
	}
}

func countsConsistent(counts []int, n int) bool {
	if counts == nil {
		return false
	}
	sum := 0
	for _, c := range counts {
		if c < 1 {
			return false
		}
		sum += c
	}
	return sum == n
}

// addContour adds the edges of one closed polyline.
func (t *edgeTable) addContour(vertices []float64, withLUT bool) {
	n := len(vertices) / 2
	if n < 2 {
		return
	}
	for i := range n {
		j := i + 1
		if j == n {
			j = 0
		}
		t.addEdge(vertices[2*i], vertices[2*i+1], vertices[2*j], vertices[2*j+1], withLUT)
	}
}
