package croquis

import (
	"image/color"
	"strconv"
	"strings"
)

// RGBA is a straight-alpha colour with components in [0, 1]. Pixmaps
// store it premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Palette used by the panes and the grid.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)

// RGB returns an opaque colour.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// Color rounds c to 8-bit straight alpha, clamping out-of-range values.
func (c RGBA) Color() color.NRGBA {
	return color.NRGBA{R: unit8(c.R), G: unit8(c.G), B: unit8(c.B), A: unit8(c.A)}
}

// premul8 returns c as premultiplied bytes, the pixmap layout.
func (c RGBA) premul8() (r, g, b, a uint8) {
	p := color.RGBAModel.Convert(c.Color()).(color.RGBA)
	return p.R, p.G, p.B, p.A
}

// Hex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA", with or without
// the leading '#'. Anything else yields opaque black.
func Hex(s string) RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 || len(s) == 4 {
		var b strings.Builder
		for i := 0; i < len(s); i++ {
			b.WriteByte(s[i])
			b.WriteByte(s[i])
		}
		s = b.String()
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return Black
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Black
	}
	return RGBA{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}
}

func unit8(x float64) uint8 {
	switch {
	case !(x > 0):
		return 0
	case x >= 1:
		return 255
	}
	return uint8(x*255 + 0.5)
}
