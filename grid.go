package croquis

import (
	"math"

	"github.com/gogpu/croquis/internal/raster"
)

// Grid line opacities.
const (
	gridLineAlpha   = 0.35
	gridBorderAlpha = 0.5
)

// subGridDash is the 4-on/4-off pattern of sub-grid lines.
var subGridDash = []float64{4, 4}

// GridConfig describes the guide grid drawn over both panes.
type GridConfig struct {
	// Divisions is the number of columns. Zero disables the grid.
	Divisions int
	// LineWidth is the main line width in pixels. Odd widths are
	// snapped to pixel centers.
	LineWidth int
	// SubGrid adds dashed lines halfway between main lines.
	SubGrid bool
}

// PrimitiveKind classifies grid primitives.
type PrimitiveKind uint8

const (
	// MainLine is a solid division line.
	MainLine PrimitiveKind = iota
	// Border is the full-canvas frame rectangle.
	Border
	// SubLine is a dashed half-step line.
	SubLine
)

// String returns the kind name.
func (k PrimitiveKind) String() string {
	switch k {
	case MainLine:
		return "main"
	case Border:
		return "border"
	case SubLine:
		return "sub"
	default:
		return "unknown"
	}
}

// Primitive is one stroke of grid geometry. Lines run from (X0,Y0) to
// (X1,Y1); a Border is the rectangle with those corners.
type Primitive struct {
	Kind           PrimitiveKind
	X0, Y0, X1, Y1 float64
	Width          float64
	Alpha          float64
	Dash           *Dash
}

// snapOffset returns the half-pixel offset that keeps odd widths crisp.
func snapOffset(width int) float64 {
	if width%2 == 1 {
		return 0.5
	}
	return 0
}

// GridLines generates the grid geometry for a width×height canvas.
// Row spacing equals column spacing, so rows are square cells measured
// from the top. The result is deterministic and empty when Divisions <= 0.
func GridLines(cfg GridConfig, width, height int) []Primitive {
	n := cfg.Divisions
	if n <= 0 || width <= 0 || height <= 0 {
		return nil
	}
	w := max(cfg.LineWidth, 1)
	iw, ih := float64(width), float64(height)
	s := iw / float64(n)
	offset := snapOffset(w)
	lw := float64(w)

	var out []Primitive
	for i := 1; i < n; i++ {
		x := math.Round(s*float64(i)) + offset
		out = append(out, Primitive{Kind: MainLine, X0: x, Y0: 0, X1: x, Y1: ih, Width: lw, Alpha: gridLineAlpha})
	}
	for k := 1; s*float64(k) < ih; k++ {
		y := math.Round(s*float64(k)) + offset
		out = append(out, Primitive{Kind: MainLine, X0: 0, Y0: y, X1: iw, Y1: y, Width: lw, Alpha: gridLineAlpha})
	}

	inset := 1.0
	if offset != 0 {
		inset = 0
	}
	out = append(out, Primitive{
		Kind: Border,
		X0:   offset, Y0: offset,
		X1: offset + iw - 1 - inset, Y1: offset + ih - 1 - inset,
		Width: lw, Alpha: gridBorderAlpha,
	})

	if !cfg.SubGrid {
		return out
	}

	subStep := s / 2
	subWidth := max(1, w-3)
	subOffset := snapOffset(subWidth)
	sw := float64(subWidth)
	for i := 1; i < n*2; i += 2 {
		x := math.Round(subStep*float64(i)) + subOffset
		out = append(out, Primitive{Kind: SubLine, X0: x, Y0: 0, X1: x, Y1: ih, Width: sw, Alpha: gridLineAlpha, Dash: NewDash(subGridDash...)})
	}
	rows := int(math.Floor(ih / subStep))
	for i := 1; i < rows; i++ {
		y := subStep * float64(i)
		if math.Abs(y/s-math.Round(y/s)) < 1e-6 {
			continue
		}
		yy := math.Round(y) + subOffset
		out = append(out, Primitive{Kind: SubLine, X0: 0, Y0: yy, X1: iw, Y1: yy, Width: sw, Alpha: gridLineAlpha, Dash: NewDash(subGridDash...)})
	}
	return out
}

// contours returns the fill outline of a primitive in canvas pixels.
// Lines are butt-capped; a Border is a frame with its interior cut out.
func (p Primitive) contours() [][]raster.Point {
	hw := p.Width / 2
	if hw <= 0 {
		return nil
	}
	if p.Kind == Border {
		c := [][]raster.Point{raster.RectContour(p.X0-hw, p.Y0-hw, p.X1+hw, p.Y1+hw, false)}
		if p.X1-p.X0 > p.Width && p.Y1-p.Y0 > p.Width {
			c = append(c, raster.RectContour(p.X0+hw, p.Y0+hw, p.X1-hw, p.Y1-hw, true))
		}
		return c
	}

	dx, dy := p.X1-p.X0, p.Y1-p.Y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	ux, uy := dx/length, dy/length
	nx, ny := -uy*hw, ux*hw

	var c [][]raster.Point
	for _, sp := range p.Dash.Segments(length) {
		ax, ay := p.X0+ux*sp.Start, p.Y0+uy*sp.Start
		bx, by := p.X0+ux*sp.End, p.Y0+uy*sp.End
		c = append(c, []raster.Point{
			{X: ax + nx, Y: ay + ny},
			{X: bx + nx, Y: by + ny},
			{X: bx - nx, Y: by - ny},
			{X: ax - nx, Y: ay - ny},
		})
	}
	return c
}

// DrawGrid renders primitives onto pm in order, each composited
// source-over in black at its own alpha.
func DrawGrid(pm *Pixmap, prims []Primitive) {
	s := pm.surface()
	for _, p := range prims {
		r, g, b, a := Black.WithAlpha(p.Alpha).premul8()
		raster.FillPolygons(s, p.contours(), raster.Paint{Mode: raster.ModePaint, R: r, G: g, B: b, A: a})
	}
}
