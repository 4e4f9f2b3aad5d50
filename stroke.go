package croquis

import (
	"github.com/gogpu/croquis/internal/raster"
)

// Tool width bounds in pixels.
const (
	MinToolWidth    = 1
	MaxPenWidth     = 64
	MaxEraserWidth  = 128
	DefaultPenWidth = 3
)

// DefaultEraserWidth is derived once from the default pen width.
const DefaultEraserWidth = DefaultPenWidth * 3

// Tool selects how a stroke affects the stroke layer.
type Tool uint8

const (
	// Pen paints opaque black.
	Pen Tool = iota
	// Eraser removes ink and paper alike, leaving transparency.
	Eraser
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case Pen:
		return "pen"
	case Eraser:
		return "eraser"
	default:
		return "unknown"
	}
}

// ParseTool converts a tool name. Unknown names yield Pen.
func ParseTool(s string) Tool {
	if s == "eraser" {
		return Eraser
	}
	return Pen
}

// InputGate decides whether pointer input may mutate the stroke layer.
type InputGate interface {
	CanAcceptInput() bool
}

// openGate accepts all input.
type openGate struct{}

func (openGate) CanAcceptInput() bool { return true }

// StrokeEngine owns the stroke layer and turns pointer samples into ink.
// Each stroke is a disc at its first sample followed by round-capped
// segments between consecutive samples. Tool and width are fixed when the
// stroke begins.
type StrokeEngine struct {
	layer *Pixmap
	gate  InputGate

	tool        Tool
	penWidth    int
	eraserWidth int

	drawing      bool
	lastX, lastY float64
	strokeTool   Tool
	strokeWidth  int
}

// NewStrokeEngine creates a white stroke layer of the given size.
// A nil gate accepts all input.
func NewStrokeEngine(width, height int, gate InputGate) *StrokeEngine {
	if gate == nil {
		gate = openGate{}
	}
	e := &StrokeEngine{
		layer:       NewPixmap(width, height),
		gate:        gate,
		penWidth:    DefaultPenWidth,
		eraserWidth: DefaultEraserWidth,
	}
	e.layer.Clear(White)
	return e
}

// Layer returns the stroke layer. Callers must not modify it.
func (e *StrokeEngine) Layer() *Pixmap { return e.layer }

// Tool returns the active tool.
func (e *StrokeEngine) Tool() Tool { return e.tool }

// SetTool selects the tool for the next stroke.
func (e *StrokeEngine) SetTool(t Tool) { e.tool = t }

// PenWidth returns the pen diameter.
func (e *StrokeEngine) PenWidth() int { return e.penWidth }

// EraserWidth returns the eraser diameter.
func (e *StrokeEngine) EraserWidth() int { return e.eraserWidth }

// SetPenWidth sets the pen diameter, clamped to [1, 64].
func (e *StrokeEngine) SetPenWidth(w int) {
	e.penWidth = clampInt(w, MinToolWidth, MaxPenWidth)
}

// SetEraserWidth sets the eraser diameter, clamped to [1, 128].
func (e *StrokeEngine) SetEraserWidth(w int) {
	e.eraserWidth = clampInt(w, MinToolWidth, MaxEraserWidth)
}

// Drawing reports whether a stroke is in progress.
func (e *StrokeEngine) Drawing() bool { return e.drawing }

// Begin starts a stroke at (x, y) and stamps a disc of the active tool's
// diameter. It reports whether the layer was touched.
func (e *StrokeEngine) Begin(x, y float64) bool {
	if !e.gate.CanAcceptInput() {
		return false
	}
	e.drawing = true
	e.strokeTool = e.tool
	e.strokeWidth = e.penWidth
	if e.tool == Eraser {
		e.strokeWidth = e.eraserWidth
	}
	e.lastX, e.lastY = x, y

	raster.FillDisc(e.layer.surface(), x, y, float64(e.strokeWidth)/2, e.paint())
	Logger().Debug("croquis: stroke begin", "tool", e.strokeTool, "width", e.strokeWidth, "x", x, "y", y)
	return true
}

// Continue extends the stroke to (x, y). It is a no-op unless a stroke
// is in progress and input is accepted.
func (e *StrokeEngine) Continue(x, y float64) bool {
	if !e.drawing || !e.gate.CanAcceptInput() {
		return false
	}
	raster.StrokeSegment(e.layer.surface(), e.lastX, e.lastY, x, y, float64(e.strokeWidth), e.paint())
	e.lastX, e.lastY = x, y
	return true
}

// End finishes the current stroke.
func (e *StrokeEngine) End() {
	e.drawing = false
}

// Clear resets the whole layer to opaque white.
func (e *StrokeEngine) Clear() {
	e.layer.Clear(White)
}

func (e *StrokeEngine) paint() raster.Paint {
	if e.strokeTool == Eraser {
		return raster.Paint{Mode: raster.ModeErase, A: 255}
	}
	return raster.Paint{Mode: raster.ModePaint, A: 255}
}
