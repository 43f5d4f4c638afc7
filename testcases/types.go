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

// Package testcases defines shared geometry for rendering tests.
package testcases

import "seehuhn.de/go/pdf/graphics"

// TestCase defines a single rendering test.
type TestCase struct {
	Name     string    // lowercase a-z and _ only
	Vertices []float64 // interleaved (x, y) coordinates in pixels
	Counts   []int     // contour lengths; nil means a single contour
	Width    int       // canvas width in pixels
	Height   int       // canvas height in pixels
	Op       Operation // fill or stroke
}

// Operation is the rendering operation to apply to the geometry.
type Operation interface {
	isOperation()
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill specifies a fill operation.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float64                // line width (>0)
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // miter limit
	Dash       []float64              // dash pattern (nil for solid)
	DashPhase  float64                // dash phase offset
	Closed     bool                   // close each subpath back to its start
}

func (Stroke) isOperation() {}
