package croquis

import (
	"github.com/gogpu/croquis/internal/filter"
)

// GrayscaleStrategy converts a layer to grayscale. Apply never modifies
// src; it returns a new offscreen pixmap.
type GrayscaleStrategy interface {
	Name() string
	Apply(src *Pixmap) *Pixmap
}

// Capabilities describe what the rendering backend offers.
type Capabilities struct {
	// ColorFilter is a native colour-matrix filter effect.
	ColorFilter bool
	// PixelAccess allows reading and writing individual pixels.
	PixelAccess bool
}

// DefaultCapabilities is the CPU backend: everything is available.
var DefaultCapabilities = Capabilities{ColorFilter: true, PixelAccess: true}

// SelectGrayscale picks the best strategy for the backend:
// the filter effect, else a per-pixel luma loop, else no conversion.
func SelectGrayscale(c Capabilities) GrayscaleStrategy {
	switch {
	case c.ColorFilter:
		return FilterGrayscale{}
	case c.PixelAccess:
		Logger().Warn("croquis: color filter unavailable, using per-pixel grayscale")
		return LumaGrayscale{}
	default:
		Logger().Warn("croquis: no grayscale support, reference stays in color")
		return NoGrayscale{}
	}
}

// FilterGrayscale applies the Rec. 709 colour-matrix filter.
type FilterGrayscale struct{}

// Name returns "filter".
func (FilterGrayscale) Name() string { return "filter" }

// Apply returns a grayscale copy of src.
func (FilterGrayscale) Apply(src *Pixmap) *Pixmap {
	dst := NewPixmap(src.width, src.height)
	m := filter.Grayscale()
	m.Apply(dst.data, src.data)
	return dst
}

// LumaGrayscale computes Y = 0.2126R + 0.7152G + 0.0722B per pixel on an
// offscreen copy, truncating toward zero. The weights sum to one, so
// running it on premultiplied data keeps every channel within alpha.
type LumaGrayscale struct{}

// Name returns "luma".
func (LumaGrayscale) Name() string { return "luma" }

// Apply returns a grayscale copy of src.
func (LumaGrayscale) Apply(src *Pixmap) *Pixmap {
	dst := src.Clone()
	d := dst.data
	for i := 0; i+3 < len(d); i += 4 {
		y := uint8(filter.LumaR*float64(d[i]) + filter.LumaG*float64(d[i+1]) + filter.LumaB*float64(d[i+2]))
		d[i], d[i+1], d[i+2] = y, y, y
	}
	return dst
}

// NoGrayscale leaves colours untouched.
type NoGrayscale struct{}

// Name returns "none".
func (NoGrayscale) Name() string { return "none" }

// Apply returns a copy of src.
func (NoGrayscale) Apply(src *Pixmap) *Pixmap { return src.Clone() }
