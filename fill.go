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

// edgeBand describes one boundary edge's travel within the current row
// and the anti-aliasing band width derived from it.
type edgeBand struct {
	xTop, xBot int32 // x at the top and bottom of the row, fixed point
	band       int   // AA band width in pixels
	wide       bool  // travel exceeded MaxBand
}

// bandFor computes an edge's within-row sweep. The common case uses the
// cheap estimate from the per-scanline increment; edges that enter or
// leave mid-row, or sweep more than one pixel, are re-evaluated exactly
// from the line equation.
func (r *Rasterizer) bandFor(e *edge, y int32) edgeBand {
	rowTop := y << subPixelShift
	rowBot := rowTop + subPixelScale

	var b edgeBand
	if e.dxdy <= subPixelScale && e.dxdy >= -subPixelScale &&
		e.y0 <= rowTop && e.y1 >= rowBot {
		b.xTop = e.x - e.dxdy/2
		b.xBot = e.x + e.dxdy/2
	} else {
		yT, yB := rowTop, rowBot
		if e.y0 > yT {
			yT = e.y0
		}
		if e.y1 < yB {
			yB = e.y1
		}
		b.xTop = e.xAtY(yT)
		b.xBot = e.xAtY(yB)
	}

	sweep := int64(b.xTop - b.xBot)
	if sweep < 0 {
		sweep = -sweep
	}
	sweep = sweep * int64(r.quality.Softness) / 64

	b.band = int((sweep+subPixelScale-1)>>subPixelShift) + r.quality.BandBias
	if b.band < r.quality.MinBand {
		b.band = r.quality.MinBand
	}
	if b.band > r.quality.MaxBand {
		b.band = r.quality.MaxBand
		b.wide = true
	}
	return b
}

// fracLeft returns the fraction (0-255) of the given pixel column lying
// left of the edge's sweep within the current row, optionally blended
// with the lookup table's distance-based estimate. The analytic integral
// is always evaluated; the table is never the sole source of coverage.
func (r *Rasterizer) fracLeft(e *edge, b *edgeBand, col int, yc int32) uint8 {
	colX := int32(col) << subPixelShift
	analytic := coverageIntegral(b.xTop-colX, b.xBot-colX)
	if r.lut == nil {
		return analytic
	}
	lut := r.lut.fracLeft(e, colX+subPixelHalf, yc)
	m := r.quality.LUTMix
	return uint8(((256-m)*int(analytic) + m*int(lut) + 128) >> 8)
}

// spanAlpha is the exact coverage of one column between the span's two
// boundary edges: the right-boundary integral minus the left-boundary
// integral, clamped.
func (r *Rasterizer) spanAlpha(eL, eR *edge, bL, bR *edgeBand, col int, yc int32) uint8 {
	a := int(r.fracLeft(eR, bR, col, yc)) - int(r.fracLeft(eL, bL, col, yc))
	if a < 0 {
		return 0
	}
	return uint8(a)
}

// fillSpan renders one span of row y. Boundary pixels get analytic
// coverage; the interior is filled solid. The AA bands straddle each
// boundary's center crossing, since a sweeping edge covers columns on
// both sides of it. Three regimes apply: the bands may cover the whole
// span, leave a solid interior between them, or, under the wide-sweep
// policy, grow to the boundary edges' full extents so steep or shallow
// edges are never truncated.
//
// When sampled is true (self-intersecting input) boundary coverage is
// routed through the sampling fallback into the row buffer instead of
// being blended directly.
func (r *Rasterizer) fillSpan(y int32, sp span, rule FillRule, argb uint32, sampled bool) {
	pxL := int(sp.x0 >> subPixelShift)
	pxR := int((sp.x1 - 1) >> subPixelShift)

	eL := &r.table.edges[sp.left]
	eR := &r.table.edges[sp.right]
	bL := r.bandFor(eL, y)
	bR := r.bandFor(eR, y)
	yc := y<<subPixelShift + subPixelHalf

	pxLStart := pxL - bL.band + 1     // first AA column
	leftAAEnd := pxL + bL.band        // exclusive
	rightAAStart := pxR - bR.band + 1 // inclusive
	pxREnd := pxR + bR.band - 1       // last AA column
	if r.quality.WideSweep {
		if bL.wide {
			if lo := int(min32(bL.xTop, bL.xBot) >> subPixelShift); lo < pxLStart {
				pxLStart = lo
			}
			if hi := int(max32(bL.xTop, bL.xBot)>>subPixelShift) + 1; hi > leftAAEnd {
				leftAAEnd = hi
			}
		}
		if bR.wide {
			if lo := int(min32(bR.xTop, bR.xBot) >> subPixelShift); lo < rightAAStart {
				rightAAStart = lo
			}
			if hi := int(max32(bR.xTop, bR.xBot) >> subPixelShift); hi > pxREnd {
				pxREnd = hi
			}
		}
	}
	pxLStart = maxInt(pxLStart, 0)
	pxREnd = minInt(pxREnd, r.width-1)
	if pxLStart > pxREnd {
		return
	}
	if leftAAEnd > pxREnd+1 {
		leftAAEnd = pxREnd + 1
	}
	if rightAAStart < pxLStart {
		rightAAStart = pxLStart
	}

	writeAA := func(col int, alpha uint8) {
		if sampled {
			r.writeSampled(col, y, rule, alpha)
			return
		}
		if alpha > 0 {
			r.fb.blend(col, int(y), argb, uint32(alpha))
		}
	}

	if leftAAEnd >= rightAAStart {
		// Bands cover the whole span.
		for col := pxLStart; col <= pxREnd; col++ {
			writeAA(col, r.spanAlpha(eL, eR, &bL, &bR, col, yc))
		}
		return
	}

	for col := pxLStart; col < leftAAEnd; col++ {
		writeAA(col, r.spanAlpha(eL, eR, &bL, &bR, col, yc))
	}
	if sampled {
		r.writeSampledSolid(leftAAEnd, rightAAStart)
	} else {
		r.fb.fillSpan(int(y), leftAAEnd, rightAAStart, argb)
	}
	for col := rightAAStart; col <= pxREnd; col++ {
		writeAA(col, r.spanAlpha(eL, eR, &bL, &bR, col, yc))
	}
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
