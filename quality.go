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

import "fmt"

// Quality bundles the anti-aliasing tuning knobs of a Rasterizer.
// A Quality value is chosen once when the Rasterizer is created and is
// never mutated mid-render. The zero value is invalid; start from one of
// the named constructors and adjust fields as needed.
type Quality struct {
	// MinBand is the minimum width of the anti-aliased band at a span
	// boundary, in pixels. Zero disables boundary anti-aliasing.
	MinBand int

	// MaxBand is the maximum band width, in pixels. An edge whose
	// within-row travel requires a wider band triggers the wide-sweep
	// policy instead of widening the band further.
	MaxBand int

	// BandBias is added to the band width estimated from an edge's
	// within-row travel.
	BandBias int

	// Softness scales the within-row travel before the band width is
	// derived from it, in 1/64 units. 64 means no scaling.
	Softness int

	// LUTMix blends table-derived coverage into the analytic coverage,
	// in 1/256 units. 0 disables the lookup table entirely; 256 is not
	// allowed (the table is a refinement, never the sole source).
	LUTMix int

	// WideSweep widens the anti-aliased region to the union of the
	// boundary edges' extents when an edge travels more than MaxBand
	// pixels within one row. When false such rows are banded at MaxBand.
	WideSweep bool

	// SampleGrid is the per-pixel sampling grid size (N for an N×N grid)
	// used by the self-intersection fallback.
	SampleGrid int

	// FallbackMix blends sampled coverage into the analytic coverage for
	// self-intersecting input, in 1/256 units. 256 uses sampled coverage
	// exclusively.
	FallbackMix int
}

// Fast returns a quality configuration favoring throughput: narrow bands,
// no lookup table, a coarse fallback sampling grid.
func Fast() Quality {
	return Quality{
		MinBand:     1,
		MaxBand:     3,
		BandBias:    0,
		Softness:    64,
		LUTMix:      0,
		WideSweep:   false,
		SampleGrid:  2,
		FallbackMix: 256,
	}
}

// Balanced returns the default quality configuration.
func Balanced() Quality {
	return Quality{
		MinBand:     1,
		MaxBand:     4,
		BandBias:    1,
		Softness:    64,
		LUTMix:      0,
		WideSweep:   true,
		SampleGrid:  4,
		FallbackMix: 256,
	}
}

// Exact returns a quality configuration favoring boundary fidelity: wide
// bands, lookup-table refinement, a fine fallback sampling grid.
func Exact() Quality {
	return Quality{
		MinBand:     1,
		MaxBand:     6,
		BandBias:    1,
		Softness:    96,
		LUTMix:      64,
		WideSweep:   true,
		SampleGrid:  4,
		FallbackMix: 256,
	}
}

// validate reports the first invalid field, if any.
func (q Quality) validate() error {
	if q.MinBand < 0 {
		return fmt.Errorf("scanline: MinBand must be non-negative, got %d", q.MinBand)
	}
	if q.MaxBand < q.MinBand {
		return fmt.Errorf("scanline: MaxBand (%d) must be at least MinBand (%d)", q.MaxBand, q.MinBand)
	}
	if q.BandBias < 0 {
		return fmt.Errorf("scanline: BandBias must be non-negative, got %d", q.BandBias)
	}
	if q.Softness <= 0 {
		return fmt.Errorf("scanline: Softness must be positive, got %d", q.Softness)
	}
	if q.LUTMix < 0 || q.LUTMix > 255 {
		return fmt.Errorf("scanline: LUTMix must be in [0, 255], got %d", q.LUTMix)
	}
	if q.SampleGrid < 1 || q.SampleGrid > 16 {
		return fmt.Errorf("scanline: SampleGrid must be in [1, 16], got %d", q.SampleGrid)
	}
	if q.FallbackMix < 0 || q.FallbackMix > 256 {
		return fmt.Errorf("scanline: FallbackMix must be in [0, 256], got %d", q.FallbackMix)
	}
	return nil
}
