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

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Default values and tolerances for stroke outline generation.
const (
	// defaultMiterLimit matches PDF/PostScript. This converts joins to
	// bevels when the interior angle is less than approximately 11.5
	// degrees.
	defaultMiterLimit = 10.0

	// strokeFlatness is the arc flattening tolerance in pixels for round
	// caps and joins.
	strokeFlatness = 0.25

	// zeroLengthThreshold is the minimum length for a stroke segment.
	// Segments shorter than this are skipped.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold detects nearly collinear segments where no
	// join is needed.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold is the cosine threshold for detecting cusps
	// (path doubling back on itself). cos(179.43°) ≈ -0.9999
	cuspCosineThreshold = -0.9999
)

// strokeSegment is one polyline segment with its precomputed direction
// frame.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints in pixel coordinates
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// StrokePolyline strokes a polyline given as interleaved (x, y) vertex
// coordinates in pixels, using Width, Cap, Join, MiterLimit, Dash, and
// DashPhase. contourCounts splits the buffer into subpaths under the
// same rules as DrawPolygon; closed selects whether each subpath is
// closed back to its first vertex.
//
// The stroke outline is built as a set of polygons and filled with the
// non-zero winding rule, so overlapping dash segments and joins are
// painted exactly once.
func (r *Rasterizer) StrokePolyline(vertices []float64, contourCounts []int, closed bool, argb uint32) error {
	if r.Width <= 0 {
		return fmt.Errorf("scanline: stroke width must be positive, got %g", r.Width)
	}
	if r.MiterLimit < 1 {
		return fmt.Errorf("scanline: miter limit must be at least 1, got %g", r.MiterLimit)
	}

	r.buildStrokeSegments(vertices, contourCounts, closed)
	if len(r.segsOffsets) == 0 {
		return nil
	}

	r.strokeVerts = r.strokeVerts[:0]
	r.strokeCounts = r.strokeCounts[:0]

	if len(r.Dash) > 0 {
		r.applyDashPattern()
		for i := range r.dashedOffs {
			// Dashed runs are always open.
			r.strokeSubpath(r.dashedRun(i), false)
		}
	} else {
		for i := range r.segsOffsets {
			r.strokeSubpath(r.subpathSegments(i), closed)
		}
	}

	if len(r.strokeCounts) == 0 {
		return nil
	}
	return r.DrawPolygon(r.strokeVerts, argb, NonZero, r.strokeCounts)
}

// buildStrokeSegments converts the vertex buffer into segments with
// precomputed tangent frames, one segment run per subpath. Metadata
// inconsistent with the buffer length falls back to a single subpath.
func (r *Rasterizer) buildStrokeSegments(vertices []float64, contourCounts []int, closed bool) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]

	n := len(vertices) / 2
	counts := contourCounts
	if !countsConsistent(counts, n) {
		counts = nil
	}
	if counts == nil {
		r.addSubpathSegments(vertices, closed)
		return
	}
	offset := 0
	for _, c := range counts {
		r.addSubpathSegments(vertices[2*offset:2*(offset+c)], closed)
		offset += c
	}
}

func (r *Rasterizer) addSubpathSegments(vertices []float64, closed bool) {
	n := len(vertices) / 2
	if n < 2 {
		return
	}
	start := len(r.segs)
	for i := 0; i < n-1; i++ {
		r.addStrokeSegment(
			vec.Vec2{X: vertices[2*i], Y: vertices[2*i+1]},
			vec.Vec2{X: vertices[2*i+2], Y: vertices[2*i+3]},
		)
	}
	if closed {
		r.addStrokeSegment(
			vec.Vec2{X: vertices[2*(n-1)], Y: vertices[2*(n-1)+1]},
			vec.Vec2{X: vertices[0], Y: vertices[1]},
		)
	}
	if len(r.segs) > start {
		r.segsOffsets = append(r.segsOffsets, start)
	}
}

func (r *Rasterizer) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: n})
}

// subpathSegments returns the segments of subpath i as a slice into segs.
func (r *Rasterizer) subpathSegments(i int) []strokeSegment {
	start := r.segsOffsets[i]
	end := len(r.segs)
	if i+1 < len(r.segsOffsets) {
		end = r.segsOffsets[i+1]
	}
	return r.segs[start:end]
}

// dashedRun returns the segments of dashed run i as a slice into
// dashedSegs.
func (r *Rasterizer) dashedRun(i int) []strokeSegment {
	start := r.dashedOffs[i]
	end := len(r.dashedSegs)
	if i+1 < len(r.dashedOffs) {
		end = r.dashedOffs[i+1]
	}
	return r.dashedSegs[start:end]
}

func (r *Rasterizer) emitStrokePoint(p vec.Vec2) {
	r.strokeVerts = append(r.strokeVerts, p.X, p.Y)
}

// endStrokeContour records the contour started at the given strokeVerts
// offset, discarding degenerate outlines with fewer than three vertices.
func (r *Rasterizer) endStrokeContour(start int) {
	n := (len(r.strokeVerts) - start) / 2
	if n >= 3 {
		r.strokeCounts = append(r.strokeCounts, n)
	} else {
		r.strokeVerts = r.strokeVerts[:start]
	}
}

// strokeSubpath builds the stroke outline of one subpath. An open
// subpath becomes a single polygon: the +N offset side forward, the end
// cap, the -N offset side backward, the start cap. A closed subpath
// becomes two rings with opposite orientation, so the non-zero rule
// leaves the interior unpainted.
//
// At each corner the outer side gets join geometry; the inner side is
// cut at the intersection of the two offset lines, so the outline does
// not fold back on itself.
func (r *Rasterizer) strokeSubpath(segs []strokeSegment, closed bool) {
	if len(segs) == 0 {
		return
	}
	d := r.Width / 2
	n := len(segs)
	first := &segs[0]
	last := &segs[n-1]

	start := len(r.strokeVerts)

	// Forward pass: +N side.
	if closed {
		for i := range segs {
			r.cornerPlus(&segs[i], &segs[(i+1)%n], d)
		}
		r.endStrokeContour(start)
		start = len(r.strokeVerts)
	} else {
		r.emitStrokePoint(first.A.Add(first.N.Mul(d)))
		for i := 0; i < n-1; i++ {
			r.cornerPlus(&segs[i], &segs[i+1], d)
		}
		r.emitStrokePoint(last.B.Add(last.N.Mul(d)))
		r.addCap(last.B, last.T, d)
	}

	// Backward pass: -N side.
	if closed {
		for i := n - 1; i >= 0; i-- {
			r.cornerMinus(&segs[(i-1+n)%n], &segs[i], d)
		}
	} else {
		r.emitStrokePoint(last.B.Sub(last.N.Mul(d)))
		for i := n - 1; i >= 1; i-- {
			r.cornerMinus(&segs[i-1], &segs[i], d)
		}
		r.emitStrokePoint(first.A.Sub(first.N.Mul(d)))
		r.addCap(first.A, first.T.Mul(-1), d)
	}
	r.endStrokeContour(start)
}

// cornerPlus emits the +N side geometry of the corner at seg.B, where
// the tangent changes from seg.T to next.T.
func (r *Rasterizer) cornerPlus(seg, next *strokeSegment, d float64) {
	sinTheta := seg.T.X*next.T.Y - seg.T.Y*next.T.X
	switch {
	case math.Abs(sinTheta) < collinearityThreshold:
		r.emitStrokePoint(seg.B.Add(seg.N.Mul(d)))

	case sinTheta > 0:
		// Right turn: +N is the inner side.
		if p, ok := innerIntersection(seg.B, seg.T, next.T, d, true); ok {
			r.emitStrokePoint(p)
		} else {
			r.emitStrokePoint(seg.B.Add(seg.N.Mul(d)))
			r.emitStrokePoint(next.A.Add(next.N.Mul(d)))
		}

	default:
		// Left turn: +N is the outer side.
		r.emitStrokePoint(seg.B.Add(seg.N.Mul(d)))
		r.addJoin(seg.B, seg.T, next.T, d)
		r.emitStrokePoint(next.A.Add(next.N.Mul(d)))
	}
}

// cornerMinus emits the -N side geometry of the corner at seg.A, where
// the tangent changes from prev.T to seg.T, traversed backward from seg
// to prev.
func (r *Rasterizer) cornerMinus(prev, seg *strokeSegment, d float64) {
	sinTheta := prev.T.X*seg.T.Y - prev.T.Y*seg.T.X
	switch {
	case math.Abs(sinTheta) < collinearityThreshold:
		r.emitStrokePoint(seg.A.Sub(seg.N.Mul(d)))

	case sinTheta < 0:
		// Left turn: -N is the inner side.
		if p, ok := innerIntersection(seg.A, prev.T, seg.T, d, false); ok {
			r.emitStrokePoint(p)
		} else {
			r.emitStrokePoint(seg.A.Sub(seg.N.Mul(d)))
			r.emitStrokePoint(prev.B.Sub(prev.N.Mul(d)))
		}

	default:
		// Right turn: -N is the outer side.
		r.emitStrokePoint(seg.A.Sub(seg.N.Mul(d)))
		r.addJoinReversed(seg.A, prev.T, seg.T, d)
		r.emitStrokePoint(prev.B.Sub(prev.N.Mul(d)))
	}
}

// innerIntersection returns the intersection of the two inner offset
// lines at a corner, or ok=false for nearly collinear or degenerate
// configurations.
func innerIntersection(P, T1, T2 vec.Vec2, d float64, positiveSide bool) (vec.Vec2, bool) {
	cosTheta := T1.Dot(T2)
	if cosTheta > 1-1e-9 {
		return vec.Vec2{}, false
	}
	// cos(θ/2) = sqrt((1 + cosθ) / 2)
	halfAngle := math.Sqrt((1 + cosTheta) / 2)
	if halfAngle < 1e-9 {
		return vec.Vec2{}, false
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
	innerDir := N1.Add(N2)
	if !positiveSide {
		innerDir = innerDir.Mul(-1)
	}
	l := innerDir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(innerDir.Mul(d / (l * halfAngle))), true
}

// addCap adds a line cap at point P. T is the outward tangent direction
// (away from the line); d is half the stroke width.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch r.Cap {
	case graphics.LineCapButt:
		// The two offset points are already connected directly.

	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.emitStrokePoint(ext.Add(N.Mul(d)))
		r.emitStrokePoint(ext.Sub(N.Mul(d)))

	case graphics.LineCapRound:
		// Semicircle from +N through T to -N, sweeping clockwise.
		r.addArc(P, d, N, -math.Pi)
	}
}

// addJoin adds join geometry on the +N (outer) side of a corner at P
// where the tangent changes from T1 to T2.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cosTheta := T1.Dot(T2)
	if cosTheta < cuspCosineThreshold {
		// Cusp: the path doubles back; emit a cap instead.
		r.addCap(P, T1, d)
		return
	}

	switch r.Join {
	case graphics.LineJoinMiter:
		// miterLength/width = 1/sin(φ/2) where φ is the interior angle;
		// sin(φ/2) = cos(θ/2) = sqrt((1+cosθ)/2).
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit+miterEpsilon {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
			bisector := N1.Add(N2)
			bLen := bisector.Length()
			if bLen > zeroLengthThreshold {
				r.emitStrokePoint(P.Add(bisector.Mul(d / (bLen * sinHalf))))
			}
			return
		}
		// Miter limit exceeded.
		fallthrough

	case graphics.LineJoinBevel:
		// The two offset points are connected directly.

	case graphics.LineJoinRound:
		N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
		angle := math.Acos(max(-1, min(1, cosTheta)))
		// Left turn on the +N side sweeps clockwise.
		r.addArc(P, d, N1, -angle)
	}
}

// addJoinReversed adds the same outer join geometry as addJoin but for
// the -N side traversed backward, from T2's offset toward T1's.
func (r *Rasterizer) addJoinReversed(P, T1, T2 vec.Vec2, d float64) {
	cosTheta := T1.Dot(T2)
	if cosTheta < cuspCosineThreshold {
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	switch r.Join {
	case graphics.LineJoinMiter:
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit+miterEpsilon {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
			bisector := N1.Add(N2).Mul(-1)
			bLen := bisector.Length()
			if bLen > zeroLengthThreshold {
				r.emitStrokePoint(P.Add(bisector.Mul(d / (bLen * sinHalf))))
			}
			return
		}
		fallthrough

	case graphics.LineJoinBevel:
		// Nothing to add.

	case graphics.LineJoinRound:
		N2 := vec.Vec2{X: T2.Y, Y: -T2.X} // -N direction of T2
		angle := math.Acos(max(-1, min(1, cosTheta)))
		r.addArc(P, d, N2, -angle)
	}
}

// addArc emits arc vertices around center. startDir is the unit vector
// from center to the arc start; sweep is in radians, positive CCW. The
// start point is included.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	if radius < strokeFlatness {
		r.emitStrokePoint(center.Add(startDir.Mul(radius)))
		cos, sin := math.Cos(sweep), math.Sin(sweep)
		end := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.emitStrokePoint(center.Add(end.Mul(radius)))
		return
	}

	// For a chord subtending angle θ, the sagitta is radius*(1-cos(θ/2));
	// solving for the tolerance gives the step size.
	angleStep := 2 * math.Acos(1-strokeFlatness/radius)
	if angleStep <= 0 || math.IsNaN(angleStep) {
		angleStep = math.Pi / 4
	}
	n := int(math.Ceil(math.Abs(sweep) / angleStep))
	if n < 1 {
		n = 1
	}

	dt := sweep / float64(n)
	for i := 0; i <= n; i++ {
		angle := float64(i) * dt
		cos, sin := math.Cos(angle), math.Sin(angle)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.emitStrokePoint(center.Add(dir.Mul(radius)))
	}
}

// applyDashPattern splits the segment runs at dash boundaries, writing
// the "on" portions to dashedSegs as open runs. An odd-length pattern
// repeats doubled, matching PostScript semantics.
func (r *Rasterizer) applyDashPattern() {
	r.dashedSegs = r.dashedSegs[:0]
	r.dashedOffs = r.dashedOffs[:0]

	dash := r.Dash
	patternLen := 0.0
	for _, d := range dash {
		patternLen += d
	}
	if len(dash)%2 == 1 {
		patternLen *= 2
	}
	if patternLen <= 0 {
		return
	}

	phase := math.Mod(r.DashPhase, patternLen)
	if phase < 0 {
		phase += patternLen
	}

	for sp := range r.segsOffsets {
		segments := r.subpathSegments(sp)

		// Position within the dash pattern at the subpath start.
		// Zero-length entries carry no phase and are consumed outright;
		// the pattern has positive total length, so this terminates.
		dashIdx := 0
		dist := phase
		for d := dash[dashIdx%len(dash)]; d == 0 || dist >= d; d = dash[dashIdx%len(dash)] {
			dist -= d
			dashIdx++
		}
		remaining := dash[dashIdx%len(dash)] - dist
		isOn := dashIdx%2 == 0

		runStart := len(r.dashedSegs)
		endRun := func() {
			if len(r.dashedSegs) > runStart {
				r.dashedOffs = append(r.dashedOffs, runStart)
				runStart = len(r.dashedSegs)
			}
		}

		for i := 0; i < len(segments); {
			seg := &segments[i]
			segLen := seg.B.Sub(seg.A).Length()
			segDist := 0.0

			for segLen-segDist > remaining {
				// The dash boundary falls inside this segment.
				if isOn {
					a := seg.A.Add(seg.T.Mul(segDist))
					b := seg.A.Add(seg.T.Mul(segDist + remaining))
					if remaining > zeroLengthThreshold {
						r.dashedSegs = append(r.dashedSegs, strokeSegment{
							A: a, B: b, T: seg.T, N: seg.N,
						})
					}
					endRun()
				}
				segDist += remaining
				dashIdx++
				remaining = dash[dashIdx%len(dash)]
				isOn = dashIdx%2 == 0
			}

			if isOn && segLen-segDist > zeroLengthThreshold {
				a := seg.A.Add(seg.T.Mul(segDist))
				r.dashedSegs = append(r.dashedSegs, strokeSegment{
					A: a, B: seg.B, T: seg.T, N: seg.N,
				})
			}
			remaining -= segLen - segDist
			i++
		}
		endRun()
	}
}
