package filter

// Rec. 709 luminance weights.
const (
	LumaR = 0.2126
	LumaG = 0.7152
	LumaB = 0.0722
)

// ColorMatrix applies a 4x5 color transformation matrix to premultiplied
// RGBA8 pixels. The transformation is:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column provides bias values in the [0, 255] range. Coefficients
// operate on straight-alpha values; Apply un-premultiplies before and
// re-premultiplies after.
type ColorMatrix [20]float32

// Identity returns the pass-through matrix.
func Identity() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Saturation blends between luminance (0) and identity (1).
func Saturation(factor float32) ColorMatrix {
	inv := 1 - factor
	return ColorMatrix{
		LumaR*inv + factor, LumaG * inv, LumaB * inv, 0, 0,
		LumaR * inv, LumaG*inv + factor, LumaB * inv, 0, 0,
		LumaR * inv, LumaG * inv, LumaB*inv + factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Grayscale is the equivalent of CSS grayscale(100%).
func Grayscale() ColorMatrix {
	return Saturation(0)
}

// Apply transforms src into dst. Both are tightly packed premultiplied RGBA8
// buffers of the same length; dst may alias src.
func (m *ColorMatrix) Apply(dst, src []uint8) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	n -= n % 4

	for i := 0; i < n; i += 4 {
		a := float32(src[i+3])
		if a == 0 {
			dst[i+0], dst[i+1], dst[i+2], dst[i+3] = 0, 0, 0, 0
			continue
		}
		r := float32(src[i+0]) * 255 / a
		g := float32(src[i+1]) * 255 / a
		b := float32(src[i+2]) * 255 / a

		newR := m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
		newG := m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
		newB := m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]
		newA := m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]

		newA = clampf(newA)
		factor := newA / 255
		dst[i+0] = roundUint8(clampf(newR) * factor)
		dst[i+1] = roundUint8(clampf(newG) * factor)
		dst[i+2] = roundUint8(clampf(newB) * factor)
		dst[i+3] = roundUint8(newA)
	}
}

func clampf(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func roundUint8(v float32) uint8 {
	return uint8(v + 0.5)
}
