// Package blend provides byte-exact compositing arithmetic for premultiplied
// RGBA8 pixels.
//
// Rounding uses Alvy Ray Smith's exact division by 255, so multiplying by
// 255 is always an identity. The compositor relies on that: a white ink
// pixel multiplied over any background leaves the background bit-for-bit
// unchanged.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255 with round-to-nearest.
//
// Formula: t = x + 128; (t + (t >> 8)) >> 8
//
// Exact for every product of two bytes (0..65025).
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// MulDiv255 returns round(a*b/255).
func MulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// Alpha8 converts an opacity in [0, 1] to a byte. Values outside the range
// are clamped; NaN maps to 0.
func Alpha8(opacity float64) byte {
	if !(opacity > 0) {
		return 0
	}
	if opacity >= 1 {
		return 255
	}
	return byte(opacity*255 + 0.5)
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
