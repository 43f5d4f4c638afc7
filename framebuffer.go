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

// framebuffer is a packed-pixel buffer in row-major 0xAARRGGBB order with
// straight (non-premultiplied) alpha. It is owned exclusively by one
// Rasterizer and mutated only during a render pass.
type framebuffer struct {
	width  int
	height int
	pix    []uint32
}

func newFramebuffer(width, height int) framebuffer {
	return framebuffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// clear fills the buffer uniformly with the given color.
func (fb *framebuffer) clear(argb uint32) {
	px := fb.pix
	for i := range px {
		px[i] = argb
	}
}

// blendPixel composites src over dst with the given coverage (0-255).
// The source color's own alpha is combined with the coverage first; a
// fully opaque result overwrites the destination directly.
func blendPixel(dst, argb uint32, cov uint32) uint32 {
	sa := argb >> 24
	a := (sa*cov + 127) / 255
	if a == 0 {
		return dst
	}
	if a == 255 {
		return argb
	}
	inv := 255 - a

	sr := (argb >> 16) & 0xff
	sg := (argb >> 8) & 0xff
	sb := argb & 0xff
	dr := (dst >> 16) & 0xff
	dg := (dst >> 8) & 0xff
	db := dst & 0xff
	da := dst >> 24

	or := (sr*a + dr*inv + 127) / 255
	og := (sg*a + dg*inv + 127) / 255
	ob := (sb*a + db*inv + 127) / 255
	oa := a + (da*inv+127)/255

	return oa<<24 | or<<16 | og<<8 | ob
}

// blend composites the color over the pixel at (x, y) with the given
// coverage. Out-of-range coordinates are the caller's responsibility.
func (fb *framebuffer) blend(x, y int, argb uint32, cov uint32) {
	i := y*fb.width + x
	fb.pix[i] = blendPixel(fb.pix[i], argb, cov)
}

// fillSpan writes the color to pixels [x0, x1) of row y at full coverage.
// Opaque colors take a direct store path.
func (fb *framebuffer) fillSpan(y, x0, x1 int, argb uint32) {
	if x0 < 0 {
		x0 = 0
	}
	if x1 > fb.width {
		x1 = fb.width
	}
	if x0 >= x1 {
		return
	}
	row := fb.pix[y*fb.width+x0 : y*fb.width+x1]
	if argb>>24 == 255 {
		for i := range row {
			row[i] = argb
		}
		return
	}
	for i := range row {
		row[i] = blendPixel(row[i], argb, 255)
	}
}
