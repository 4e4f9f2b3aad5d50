package croquis

import (
	"image"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/gogpu/croquis/internal/blend"
	"github.com/gogpu/croquis/internal/raster"
)

// DefaultExportHeight is the output height of exported feedback.
const DefaultExportHeight = 720

// Feedback is the review snapshot taken when a session ends: 1:1 copies
// of both panes plus the reference opacity. Later drawing or reference
// changes do not affect it.
type Feedback struct {
	Reference *Pixmap
	Strokes   *Pixmap
	Opacity   float64

	SessionID uuid.UUID
	Duration  time.Duration
}

// Compositor blends the reference pane and the stroke layer into the
// review image.
type Compositor struct {
	strategy GrayscaleStrategy
}

// NewCompositor creates a compositor that converts the reference with
// strategy. A nil strategy leaves it in colour.
func NewCompositor(strategy GrayscaleStrategy) *Compositor {
	if strategy == nil {
		strategy = NoGrayscale{}
	}
	return &Compositor{strategy: strategy}
}

// Strategy returns the grayscale strategy in use.
func (c *Compositor) Strategy() GrayscaleStrategy { return c.strategy }

// RenderFeedback snapshots both layers without blending them.
func (c *Compositor) RenderFeedback(ref, strokes *Pixmap, opacity float64) *Feedback {
	return &Feedback{
		Reference: ref.Clone(),
		Strokes:   strokes.Clone(),
		Opacity:   clampUnit(opacity),
	}
}

// Composite renders the review image: opaque white, then the reference
// (converted to grayscale when requested) at the given opacity, then the
// strokes multiplied on top. White and transparent stroke pixels leave
// the result unchanged. Inputs are not modified.
func (c *Compositor) Composite(ref, strokes *Pixmap, opacity float64, grayscale bool) *Pixmap {
	out := NewPixmap(ref.Width(), ref.Height())
	out.Clear(White)

	src := ref
	if grayscale {
		src = c.strategy.Apply(ref)
	}
	raster.Composite(out.surface(), src.surface(), raster.OpSourceOver, blend.Alpha8(clampUnit(opacity)))
	raster.Composite(out.surface(), strokes.surface(), raster.OpMultiply, 255)
	return out
}

// CompositeFeedback renders the review image of a snapshot. The reference
// is always shown in grayscale.
func (c *Compositor) CompositeFeedback(f *Feedback) *Pixmap {
	return c.Composite(f.Reference, f.Strokes, f.Opacity, true)
}

// ExportSize returns the output dimensions for a w×h image scaled to
// targetH rows. A non-positive targetH selects DefaultExportHeight.
func ExportSize(w, h, targetH int) (int, int) {
	if targetH <= 0 {
		targetH = DefaultExportHeight
	}
	if h <= 0 {
		return 0, targetH
	}
	return int(math.Round(float64(w) * float64(targetH) / float64(h))), targetH
}

// ExportRaster downsamples pm to targetH rows with a Catmull-Rom filter
// over a white backing.
func ExportRaster(pm *Pixmap, targetH int) *image.RGBA {
	w, h := ExportSize(pm.Width(), pm.Height(), targetH)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), pm.rgba(), pm.Bounds(), draw.Over, nil)
	return dst
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return max(0, min(1, v))
}
