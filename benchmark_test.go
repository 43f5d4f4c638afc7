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
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
)

// BenchmarkScanlineO benchmarks this rasterizer drawing an "O" shape
// built from two polygonal circles with opposite orientation.
func BenchmarkScanlineO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r, err := New(size, size, Balanced())
			if err != nil {
				b.Fatal(err)
			}

			center := float64(size) / 2
			outerR := float64(size) * 0.45
			innerR := float64(size) * 0.30

			verts := circleVertices(nil, center, center, outerR, false)
			outerN := len(verts) / 2
			verts = circleVertices(verts, center, center, innerR, true)
			counts := []int{outerN, len(verts)/2 - outerN}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Clear(0)
				err := r.DrawPolygon(verts, 0xffffffff, NonZero, counts)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing the same "O" shape
// for comparison.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			center := float64(size) / 2
			outerR := float64(size) * 0.45
			innerR := float64(size) * 0.30

			outer := circleVertices(nil, center, center, outerR, false)
			inner := circleVertices(nil, center, center, innerR, true)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				addPolygonToVector(r, outer)
				addPolygonToVector(r, inner)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// circleVertices appends a polygonal approximation of a circle to dst.
// The segment count grows with the radius so the flattening error stays
// below a fraction of a pixel at every size.
func circleVertices(dst []float64, cx, cy, r float64, clockwise bool) []float64 {
	n := int(math.Ceil(math.Pi / math.Acos(1-0.1/r)))
	if n < 8 {
		n = 8
	}
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		if clockwise {
			phi = -phi
		}
		dst = append(dst, cx+r*math.Cos(phi), cy+r*math.Sin(phi))
	}
	return dst
}

func addPolygonToVector(r *vector.Rasterizer, verts []float64) {
	r.MoveTo(float32(verts[0]), float32(verts[1]))
	for i := 2; i < len(verts); i += 2 {
		r.LineTo(float32(verts[i]), float32(verts[i+1]))
	}
	r.ClosePath()
}

// BenchmarkStrokeLine benchmarks stroking a dashed diagonal line.
func BenchmarkStrokeLine(b *testing.B) {
	const size = 200
	r, err := New(size, size, Balanced())
	if err != nil {
		b.Fatal(err)
	}
	r.Width = 4
	r.Dash = []float64{10, 5}
	verts := []float64{10, 10, 190, 180}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		r.Clear(0)
		if err := r.StrokePolyline(verts, nil, false, 0xffffffff); err != nil {
			b.Fatal(err)
		}
	}
}
