package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// FillPolygons paints the union of closed polygons. Overlapping contours of
// opposite orientation cancel, so an inner contour wound the other way
// leaves a hole.
func FillPolygons(s *Surface, polys [][]Point, p Paint) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, pt := range poly {
			minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
			minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
		}
	}
	if minX > maxX || minY > maxY {
		return
	}

	r := image.Rect(floorInt(minX), floorInt(minY), ceilInt(maxX), ceilInt(maxY)).Intersect(s.Bounds())
	if r.Empty() {
		return
	}

	w, h := r.Dx(), r.Dy()
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	z := vector.NewRasterizer(w, h)
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		z.MoveTo(float32(poly[0].X-ox), float32(poly[0].Y-oy))
		for _, pt := range poly[1:] {
			z.LineTo(float32(pt.X-ox), float32(pt.Y-oy))
		}
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.DrawOp = draw.Src
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		row := (r.Min.Y+y)*s.Width*4 + r.Min.X*4
		m := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, cov := range m {
			s.apply(row+x*4, cov, p)
		}
	}
}

// FillRect paints an axis-aligned rectangle given by two corners.
func FillRect(s *Surface, x0, y0, x1, y1 float64, p Paint) {
	FillPolygons(s, [][]Point{RectContour(x0, y0, x1, y1, false)}, p)
}

// RectContour returns the four corners of a rectangle, clockwise in screen
// space unless reverse is set.
func RectContour(x0, y0, x1, y1 float64, reverse bool) []Point {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if reverse {
		return []Point{{x0, y0}, {x0, y1}, {x1, y1}, {x1, y0}}
	}
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}
