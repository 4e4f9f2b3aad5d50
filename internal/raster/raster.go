// Package raster rasterizes strokes and grid geometry into premultiplied
// RGBA8 surfaces.
//
// Discs and capsules use signed distance coverage. Arbitrary polygons go
// through golang.org/x/image/vector.
package raster

import (
	"image"

	"github.com/gogpu/croquis/internal/blend"
)

// Surface is a premultiplied RGBA8 pixel buffer. Pix is tightly packed,
// 4 bytes per pixel, row-major.
type Surface struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewSurface allocates a transparent surface.
func NewSurface(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Surface{
		Pix:    make([]uint8, width*height*4),
		Width:  width,
		Height: height,
	}
}

// Bounds returns the surface rectangle anchored at the origin.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

// Clear resets every pixel to transparent.
func (s *Surface) Clear() {
	clear(s.Pix)
}

// Fill sets every pixel to the given premultiplied color.
func (s *Surface) Fill(r, g, b, a uint8) {
	for i := 0; i+3 < len(s.Pix); i += 4 {
		s.Pix[i+0] = r
		s.Pix[i+1] = g
		s.Pix[i+2] = b
		s.Pix[i+3] = a
	}
}

// Mode selects how a Paint affects the destination.
type Mode uint8

const (
	// ModePaint composites the paint color source-over.
	ModePaint Mode = iota
	// ModeErase removes destination coverage (destination-out).
	ModeErase
)

// Paint is a solid premultiplied color applied under a Mode.
type Paint struct {
	Mode       Mode
	R, G, B, A uint8
}

// apply blends a single pixel at byte offset i with the given coverage.
func (s *Surface) apply(i int, cov uint8, p Paint) {
	if cov == 0 {
		return
	}
	pix := s.Pix[i : i+4 : i+4]
	switch p.Mode {
	case ModeErase:
		pix[0], pix[1], pix[2], pix[3] = blend.DestinationOut(
			blend.MulDiv255(p.A, cov), pix[0], pix[1], pix[2], pix[3])
	default:
		sr, sg, sb, sa := blend.Scale(p.R, p.G, p.B, p.A, cov)
		pix[0], pix[1], pix[2], pix[3] = blend.SourceOver(
			sr, sg, sb, sa, pix[0], pix[1], pix[2], pix[3])
	}
}

// clipRect intersects a float bounding box, expanded by the antialias
// margin, with the surface.
func (s *Surface) clipRect(minX, minY, maxX, maxY float64) image.Rectangle {
	r := image.Rect(
		floorInt(minX-sdfAntialiasWidth), floorInt(minY-sdfAntialiasWidth),
		ceilInt(maxX+sdfAntialiasWidth), ceilInt(maxY+sdfAntialiasWidth),
	)
	return r.Intersect(s.Bounds())
}
