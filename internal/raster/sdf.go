package raster

import "math"

// sdfAntialiasWidth controls the smoothstep transition width in pixels.
const sdfAntialiasWidth = 0.7

// discDistance is the signed distance from (px, py) to a disc.
func discDistance(px, py, cx, cy, radius float64) float64 {
	return math.Hypot(px-cx, py-cy) - radius
}

// capsuleDistance is the signed distance from (px, py) to the round-capped
// segment (x0,y0)-(x1,y1) of the given half width.
func capsuleDistance(px, py, x0, y0, x1, y1, halfWidth float64) float64 {
	dx, dy := x1-x0, y1-y0
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return discDistance(px, py, x0, y0, halfWidth)
	}
	t := ((px-x0)*dx + (py-y0)*dy) / len2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(x0+t*dx), py-(y0+t*dy)) - halfWidth
}

// smoothstepCoverage converts a signed distance to an anti-aliased coverage
// value using a Hermite smoothstep function.
//
// sdf < -afwidth => 1.0 (fully inside)
// sdf > +afwidth => 0.0 (fully outside)
func smoothstepCoverage(sdf float64) float64 {
	if sdf >= sdfAntialiasWidth {
		return 0
	}
	if sdf <= -sdfAntialiasWidth {
		return 1
	}
	t := (sdf + sdfAntialiasWidth) / (2 * sdfAntialiasWidth)
	return 1 - (t * t * (3 - 2*t))
}

func coverage8(c float64) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(c*255 + 0.5)
}

func floorInt(v float64) int { return int(math.Floor(v)) }
func ceilInt(v float64) int  { return int(math.Ceil(v)) }

// FillDisc paints a filled anti-aliased disc centered at (cx, cy).
func FillDisc(s *Surface, cx, cy, radius float64, p Paint) {
	if radius <= 0 {
		return
	}
	r := s.clipRect(cx-radius, cy-radius, cx+radius, cy+radius)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		py := float64(y) + 0.5
		row := y * s.Width * 4
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := coverage8(smoothstepCoverage(discDistance(float64(x)+0.5, py, cx, cy, radius)))
			s.apply(row+x*4, cov, p)
		}
	}
}

// StrokeSegment paints a round-capped segment of the given width.
// A zero-length segment paints a disc.
func StrokeSegment(s *Surface, x0, y0, x1, y1, width float64, p Paint) {
	hw := width / 2
	if hw <= 0 {
		return
	}
	r := s.clipRect(
		math.Min(x0, x1)-hw, math.Min(y0, y1)-hw,
		math.Max(x0, x1)+hw, math.Max(y0, y1)+hw,
	)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		py := float64(y) + 0.5
		row := y * s.Width * 4
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := coverage8(smoothstepCoverage(capsuleDistance(float64(x)+0.5, py, x0, y0, x1, y1, hw)))
			s.apply(row+x*4, cov, p)
		}
	}
}
