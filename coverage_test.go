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
	"math"
	"testing"
)

func TestCoverageIntegralStep(t *testing.T) {
	// With u0 == u1 the sweep degenerates to a vertical step: coverage is
	// the step position as a fraction of the column width.
	cases := []struct {
		u    int32
		want uint8
	}{
		{-10, 0},
		{0, 0},
		{64, 64},   // round(64*255/256)
		{128, 128}, // round(127.5) away from zero
		{192, 191}, // round(191.25)
		{256, 255},
		{1000, 255},
	}
	for _, c := range cases {
		if got := coverageIntegral(c.u, c.u); got != c.want {
			t.Errorf("coverageIntegral(%d, %d) = %d, want %d", c.u, c.u, got, c.want)
		}
	}
}

func TestCoverageIntegralTrapezoid(t *testing.T) {
	// A sweep fully contained in the column averages its two endpoints.
	cases := []struct {
		u0, u1 int32
		want   uint8
	}{
		{0, 256, 128},   // round(127.5)
		{64, 192, 128},  // same mean
		{0, 128, 64},    // round(63.75)
		{128, 256, 191}, // round(191.25)
		{0, 64, 32},     // round(31.875)
	}
	for _, c := range cases {
		if got := coverageIntegral(c.u0, c.u1); got != c.want {
			t.Errorf("coverageIntegral(%d, %d) = %d, want %d", c.u0, c.u1, got, c.want)
		}
	}
}

func TestCoverageIntegralSymmetry(t *testing.T) {
	for u0 := int32(-512); u0 <= 768; u0 += 37 {
		for u1 := int32(-512); u1 <= 768; u1 += 41 {
			a := coverageIntegral(u0, u1)
			b := coverageIntegral(u1, u0)
			if a != b {
				t.Fatalf("coverageIntegral(%d, %d) = %d but coverageIntegral(%d, %d) = %d",
					u0, u1, a, u1, u0, b)
			}
		}
	}
}

func TestCoverageIntegralMonotone(t *testing.T) {
	// Shifting the sweep rightward can only increase the area to its
	// left.
	for u0 := int32(-512); u0 <= 512; u0 += 16 {
		prev := coverageIntegral(u0, u0+300)
		for d := int32(1); u0+d <= 768; d += 16 {
			cur := coverageIntegral(u0+d, u0+d+300)
			if cur < prev {
				t.Fatalf("coverage decreased from %d to %d at u0=%d, d=%d", prev, cur, u0, d)
			}
			prev = cur
		}
	}
}

func TestCoverageIntegralComplement(t *testing.T) {
	// Mirroring the sweep about the column center swaps left and right
	// areas; the rounded values may differ from the exact complement by
	// at most one.
	for u0 := int32(-256); u0 <= 512; u0 += 29 {
		for du := int32(0); du <= 512; du += 31 {
			u1 := u0 + du
			a := int(coverageIntegral(u0, u1))
			b := int(coverageIntegral(subPixelScale-u1, subPixelScale-u0))
			if d := a + b - 255; d < -1 || d > 1 {
				t.Fatalf("coverageIntegral(%d, %d)=%d + mirror=%d differs from 255 by %d",
					u0, u1, a, b, d)
			}
		}
	}
}

func TestQuantizeDirection(t *testing.T) {
	dirs := map[uint8]bool{}
	for _, c := range []struct{ a, b int32 }{
		{-256, 0}, {-256, 256}, {-256, -256},
		{-100, 300}, {-300, 100}, {-1, 1000},
	} {
		d := quantizeDirection(c.a, c.b)
		if d >= lutDirs {
			t.Fatalf("quantizeDirection(%d, %d) = %d out of range", c.a, c.b, d)
		}
		dirs[d] = true
	}
	if len(dirs) < 4 {
		t.Errorf("directions collapse to too few bins: %d", len(dirs))
	}

	// A vertical edge: a < 0, b == 0.
	if got := quantizeDirection(-256, 0); got != 20 {
		t.Errorf("vertical edge direction = %d, want 20", got)
	}
}

func TestSquareHalfPlaneArea(t *testing.T) {
	const eps = 1e-9
	cases := []struct {
		nx, ny, t float64
		want      float64
	}{
		{1, 0, -0.5, 0},
		{1, 0, 0, 0.5},
		{1, 0, 0.5, 1},
		{1, 0, 0.25, 0.75},
		{math.Sqrt2 / 2, math.Sqrt2 / 2, 0, 0.5},
		{math.Sqrt2 / 2, math.Sqrt2 / 2, math.Sqrt2 / 2, 1},
		{math.Sqrt2 / 2, math.Sqrt2 / 2, -math.Sqrt2 / 2, 0},
	}
	for _, c := range cases {
		if got := squareHalfPlaneArea(c.nx, c.ny, c.t); math.Abs(got-c.want) > eps {
			t.Errorf("squareHalfPlaneArea(%g, %g, %g) = %g, want %g",
				c.nx, c.ny, c.t, got, c.want)
		}
	}
}

func TestCoverageLUTMonotone(t *testing.T) {
	l := newCoverageLUT()
	for dir := range lutDirs {
		row := l.table[dir]
		if row[0] > 32 {
			t.Errorf("dir %d: table starts at %d, want near 0", dir, row[0])
		}
		if row[lutSteps-1] < 223 {
			t.Errorf("dir %d: table ends at %d, want near 255", dir, row[lutSteps-1])
		}
		for i := 1; i < lutSteps; i++ {
			if row[i] < row[i-1] {
				t.Fatalf("dir %d: table not monotone at step %d", dir, i)
			}
		}
	}
}
