package raster

import "github.com/gogpu/croquis/internal/blend"

// Op is a layer compositing operator.
type Op uint8

const (
	// OpSourceOver is normal alpha compositing.
	OpSourceOver Op = iota
	// OpMultiply is the separable multiply blend mode.
	OpMultiply
)

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case OpSourceOver:
		return "source-over"
	case OpMultiply:
		return "multiply"
	default:
		return "unknown"
	}
}

// Composite blends src onto dst with a global opacity. Surfaces must have
// the same dimensions; mismatched surfaces are composited over their common
// top-left area.
func Composite(dst, src *Surface, op Op, opacity uint8) {
	if opacity == 0 {
		return
	}
	w := min(dst.Width, src.Width)
	h := min(dst.Height, src.Height)

	for y := 0; y < h; y++ {
		di := y * dst.Width * 4
		si := y * src.Width * 4
		for x := 0; x < w; x, di, si = x+1, di+4, si+4 {
			sr, sg, sb, sa := blend.Scale(src.Pix[si], src.Pix[si+1], src.Pix[si+2], src.Pix[si+3], opacity)
			d := dst.Pix[di : di+4 : di+4]
			switch op {
			case OpMultiply:
				d[0], d[1], d[2], d[3] = blend.Multiply(sr, sg, sb, sa, d[0], d[1], d[2], d[3])
			default:
				d[0], d[1], d[2], d[3] = blend.SourceOver(sr, sg, sb, sa, d[0], d[1], d[2], d[3])
			}
		}
	}
}

// Clone returns a deep copy of s.
func (s *Surface) Clone() *Surface {
	c := &Surface{
		Pix:    make([]uint8, len(s.Pix)),
		Width:  s.Width,
		Height: s.Height,
	}
	copy(c.Pix, s.Pix)
	return c
}
