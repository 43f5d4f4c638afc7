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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// FillPath fills a polygonal path, transformed by m, into the
// framebuffer. Each subpath becomes one contour; subpaths are closed
// implicitly, so CmdClose is optional. Curve commands are not supported
// and return an error; flatten the path first.
func (r *Rasterizer) FillPath(p *path.Data, m matrix.Matrix, argb uint32, rule FillRule) error {
	r.pathVerts = r.pathVerts[:0]
	r.pathCounts = r.pathCounts[:0]

	contourStart := 0
	closeContour := func() {
		n := (len(r.pathVerts) - contourStart) / 2
		if n >= 3 {
			r.pathCounts = append(r.pathCounts, n)
		} else {
			r.pathVerts = r.pathVerts[:contourStart]
		}
		contourStart = len(r.pathVerts)
	}

	// Walk the path using direct field access (no iterator allocation).
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeContour()
			v := p.Coords[coordIdx]
			coordIdx++
			r.pathVerts = append(r.pathVerts,
				m[0]*v.X+m[2]*v.Y+m[4],
				m[1]*v.X+m[3]*v.Y+m[5])

		case path.CmdLineTo:
			v := p.Coords[coordIdx]
			coordIdx++
			r.pathVerts = append(r.pathVerts,
				m[0]*v.X+m[2]*v.Y+m[4],
				m[1]*v.X+m[3]*v.Y+m[5])

		case path.CmdClose:
			closeContour()

		case path.CmdQuadTo, path.CmdCubeTo:
			return fmt.Errorf("scanline: path contains curve segments")
		}
	}
	closeContour()

	if len(r.pathCounts) == 0 {
		return nil
	}
	return r.DrawPolygon(r.pathVerts, argb, rule, r.pathCounts)
}
