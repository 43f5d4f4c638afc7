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

// Package scanline implements an antialiased scanline polygon rasterizer
// with an internal packed ARGB framebuffer. Coverage at span boundaries
// comes from a closed-form integral over each boundary edge's within-row
// sweep, evaluated in integer arithmetic so results are reproducible
// across platforms.
package scanline

import (
	"errors"
	"fmt"

	"seehuhn.de/go/pdf/graphics"
)

// ErrUnbalancedWinding is returned by DrawPolygon when the winding sum of
// some scanline does not return to zero under the non-zero fill rule,
// which indicates an unterminated or inconsistent contour. The polygon is
// still rendered on a best-effort basis.
var ErrUnbalancedWinding = errors.New("scanline: winding sum not closed")

// Rasterizer renders filled polygons into an internal framebuffer.
// The caller creates one instance and reuses it for many polygons.
// Internal buffers grow as needed but never shrink, achieving zero
// allocations in steady state.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Width is the stroke line width in pixels.
	// Must be > 0 for stroke operations.
	Width float64

	// Cap is the line cap style for stroke endpoints.
	Cap graphics.LineCapStyle

	// Join is the line join style for stroke corners.
	Join graphics.LineJoinStyle

	// MiterLimit is the miter limit for miter joins.
	// Must be >= 1.0.
	MiterLimit float64

	// Dash is the dash pattern in pixels.
	// Nil means solid line (no dashing).
	Dash []float64

	// DashPhase is the offset into the dash pattern.
	DashPhase float64

	width   int
	height  int
	quality Quality

	fb    framebuffer
	table edgeTable
	lut   *coverageLUT

	// Per-render scratch, reused across calls.
	active     []edgeIndex
	crossings  []crossing
	sortStack  []int32
	spans      []span
	rowCov     []uint8 // sampled-fallback row accumulator
	rowLo      int
	rowHi      int
	windingErr bool

	// Path ingestion scratch buffers.
	pathVerts  []float64
	pathCounts []int

	// Stroke scratch buffers.
	strokeVerts  []float64
	strokeCounts []int
	segs         []strokeSegment
	segsOffsets  []int
	dashedSegs   []strokeSegment
	dashedOffs   []int
}

// New creates a Rasterizer with a width×height framebuffer, cleared to
// transparent black. Invalid dimensions or an invalid quality
// configuration are the only fatal errors; later drawing operations
// degrade gracefully instead of failing.
func New(width, height int, q Quality) (*Rasterizer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("scanline: invalid dimensions %d×%d", width, height)
	}
	if err := q.validate(); err != nil {
		return nil, err
	}

	r := &Rasterizer{
		Width:      1.0,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,

		width:   width,
		height:  height,
		quality: q,
		fb:      newFramebuffer(width, height),
		table:   newEdgeTable(height),
		rowCov:  make([]uint8, width),
		rowLo:   width,
	}
	if q.LUTMix > 0 {
		r.lut = newCoverageLUT()
	}
	return r, nil
}

// BufferWidth returns the framebuffer width in pixels.
func (r *Rasterizer) BufferWidth() int { return r.width }

// BufferHeight returns the framebuffer height in pixels.
func (r *Rasterizer) BufferHeight() int { return r.height }

// Buffer returns the framebuffer pixels in row-major 0xAARRGGBB order.
// The slice aliases the Rasterizer's internal storage and stays valid
// until the next drawing call.
func (r *Rasterizer) Buffer() []uint32 {
	return r.fb.pix
}

// Clear fills the framebuffer uniformly with the given color.
func (r *Rasterizer) Clear(argb uint32) {
	r.fb.clear(argb)
}

// DrawPolygon fills a polygon given as interleaved (x, y) vertex
// coordinates in pixels. contourCounts splits the vertex buffer into
// closed contours; nil, or metadata inconsistent with the buffer length,
// treats the whole buffer as a single contour. Each contour is closed
// implicitly from its last vertex back to its first.
//
// Polygons with fewer than three vertices, or entirely outside the
// framebuffer, draw nothing. Under NonZero, an unbalanced winding sum on
// any scanline reports ErrUnbalancedWinding after best-effort rendering.
func (r *Rasterizer) DrawPolygon(vertices []float64, argb uint32, rule FillRule, contourCounts []int) error {
	r.table.reset()
	r.table.build(vertices, contourCounts, r.lut != nil)
	if len(r.table.edges) == 0 {
		return nil
	}

	// The analytic boundary integral assumes a simple polygon; detect
	// self-intersection once per call and route boundary coverage through
	// the sampling fallback when needed.
	sampled := r.selfIntersects()

	r.active = r.active[:0]
	r.windingErr = false

	for y := r.table.yMin; y < r.table.yMax; y++ {
		r.stepActive(y)
		if len(r.crossings) == 0 {
			continue
		}
		r.sortCrossings()
		r.generateSpans(rule)
		for i := range r.spans {
			r.fillSpan(y, r.spans[i], rule, argb, sampled)
		}
		if sampled {
			r.flushSampledRow(y, argb)
		}
	}

	if r.windingErr && rule == NonZero {
		return ErrUnbalancedWinding
	}
	return nil
}

// Reset restores the Rasterizer to its initial state with a transparent
// framebuffer and default stroke parameters, preserving internal buffer
// capacity. This is equivalent to creating a new Rasterizer but without
// allocations.
func (r *Rasterizer) Reset() {
	r.Width = 1.0
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0

	r.fb.clear(0)
	r.table.reset()
	r.active = r.active[:0]
	r.crossings = r.crossings[:0]
	r.sortStack = r.sortStack[:0]
	r.spans = r.spans[:0]
	r.rowLo = r.width
	r.rowHi = 0
	r.windingErr = false

	r.pathVerts = r.pathVerts[:0]
	r.pathCounts = r.pathCounts[:0]
	r.strokeVerts = r.strokeVerts[:0]
	r.strokeCounts = r.strokeCounts[:0]
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.dashedSegs = r.dashedSegs[:0]
	r.dashedOffs = r.dashedOffs[:0]
}
