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

// coverageIntegral returns the exact fraction (0-255) of one pixel column
// lying left of a line that sweeps linearly from u0 at the top of the row
// to u1 at the bottom. Both offsets are measured from the column's left
// edge in subpixels. The integral is symmetric in its arguments and every
// visual property of the rasterizer reduces to it, so it must be
// bit-for-bit reproducible: integer arithmetic only.
func coverageIntegral(u0, u1 int32) uint8 {
	if u0 > u1 {
		u0, u1 = u1, u0
	}
	if u1 <= 0 {
		return 0
	}
	if u0 >= subPixelScale {
		return 255
	}

	if u0 == u1 {
		// Degenerate ramp: a vertical step at u0.
		return clamp255(roundDiv(int64(u0)*255, subPixelScale))
	}

	if u0 >= 0 && u1 <= subPixelScale {
		// Fully contained ramp: the area is a trapezoid with parallel
		// sides u0 and u1.
		return clamp255(roundDiv(int64(u0+u1)*255, 2*subPixelScale))
	}

	// The sweep leaves [0, S]. Split the parameter range t in [0, Δu]
	// into the sub-interval [tLow, tHigh] where the line is inside the
	// column (a trapezoid) and the saturated tail where it is at or past
	// the right edge.
	du := int64(u1 - u0)
	var tLow int64
	if u0 < 0 {
		tLow = int64(-u0)
	}
	tHigh := du
	if u1 > subPixelScale {
		tHigh = int64(subPixelScale - u0)
	}

	num := (tHigh-tLow)*(2*int64(u0)+tHigh+tLow) + (du-tHigh)*2*subPixelScale
	return clamp255(roundDiv(num*255, 2*subPixelScale*du))
}

func clamp255(v int64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Coverage lookup table. The table stores the clip area of a half-plane
// against the unit square, indexed by a quantized edge direction and the
// signed perpendicular distance of the pixel center from the edge's
// supporting line. It refines the analytic coverage near pixel centers
// without a per-pixel square root; the inverse edge length is
// precomputed at build time.
const (
	lutDirs  = 32 // 8 octants × 4 slope sub-bins
	lutSteps = 64 // distance steps over ±1 pixel
)

// quantizeDirection maps the line coefficients (a, b) to a direction id:
// three octant bits from the signs and the |a| vs |b| comparison, plus a
// two-bit sub-bin from the ratio of the smaller to the larger magnitude.
func quantizeDirection(a, b int32) uint8 {
	aa, bb := a, b
	oct := uint8(0)
	if aa < 0 {
		aa = -aa
		oct |= 1
	}
	if bb < 0 {
		bb = -bb
		oct |= 2
	}
	if aa > bb {
		oct |= 4
	}
	mn, mx := aa, bb
	if mn > mx {
		mn, mx = mx, mn
	}
	sub := uint8(0)
	if mx > 0 {
		sub = uint8(int64(mn) * 4 / int64(mx))
		if sub > 3 {
			sub = 3
		}
	}
	return oct<<2 | sub
}

type coverageLUT struct {
	table [lutDirs][lutSteps]uint8
}

// newCoverageLUT precomputes, for every quantized direction, the fraction
// of a unit square lying left of a line at each quantized center
// distance. Floating point is fine here; the table is built once per
// rasterizer, never in the hot path.
func newCoverageLUT() *coverageLUT {
	l := &coverageLUT{}
	for dir := range lutDirs {
		// Reconstruct a representative normal from the direction id.
		sub := dir & 3
		ratio := (float64(sub) + 0.5) / 4
		var nx, ny float64
		if dir&(4<<2) != 0 { // |a| > |b|
			nx, ny = 1, ratio
		} else {
			nx, ny = ratio, 1
		}
		norm := math.Hypot(nx, ny)
		nx /= norm
		ny /= norm

		for i := range lutSteps {
			t := -1 + (2*float64(i)+1)/lutSteps
			v := math.Round(255 * squareHalfPlaneArea(nx, ny, t))
			l.table[dir][i] = uint8(math.Max(0, math.Min(255, v)))
		}
	}
	return l
}

// squareHalfPlaneArea returns the area of {p : p·n <= t} clipped to the
// unit square centered at the origin, for a unit normal with |components|
// (nx, ny) >= 0.
func squareHalfPlaneArea(nx, ny, t float64) float64 {
	w := (nx + ny) / 2
	if t <= -w {
		return 0
	}
	if t >= w {
		return 1
	}
	s := t + w
	mn, mx := nx, ny
	if mn > mx {
		mn, mx = mx, mn
	}
	if mn < 1e-6 {
		// Axis-aligned line: the clip is a rectangle.
		return s / mx
	}
	switch {
	case s < mn:
		return s * s / (2 * mn * mx)
	case s <= mx:
		return (s - mn/2) / mx
	default:
		d := 2*w - s
		return 1 - d*d/(2*mn*mx)
	}
}

// fracLeft returns the table's estimate of the fraction (0-255) of the
// pixel centered at the fixed-point coordinates (xc, yc) lying left of
// the edge's supporting line.
func (l *coverageLUT) fracLeft(e *edge, xc, yc int32) uint8 {
	s := int64(e.a)*int64(xc) + int64(e.b)*int64(yc) + e.c
	d := (s * int64(e.invLen)) >> 30 // perpendicular distance in subpixels
	idx := (d + subPixelScale) * lutSteps / (2 * subPixelScale)
	if idx < 0 {
		idx = 0
	}
	if idx >= lutSteps {
		idx = lutSteps - 1
	}
	return l.table[e.dir][idx]
}
