package croquis

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"golang.org/x/image/draw"

	imgio "github.com/gogpu/croquis/internal/image"
)

// DecodeReference decodes a reference picture. PNG, JPEG, GIF, BMP, TIFF
// and WebP are recognized by content.
func DecodeReference(r io.Reader) (image.Image, error) {
	img, format, err := imgio.Decode(r)
	if err != nil {
		if errors.Is(err, imgio.ErrUnsupportedFormat) {
			return nil, fmt.Errorf("croquis: decode reference: %w", ErrUnsupportedFormat)
		}
		return nil, fmt.Errorf("croquis: decode reference: %w", err)
	}
	Logger().Debug("croquis: reference decoded", "format", format, "size", img.Bounds().Size())
	return img, nil
}

// LoadReference decodes the reference picture stored at path.
func LoadReference(path string) (image.Image, error) {
	img, _, err := imgio.Load(path)
	if err != nil {
		if errors.Is(err, imgio.ErrUnsupportedFormat) {
			return nil, fmt.Errorf("croquis: load reference %s: %w", path, ErrUnsupportedFormat)
		}
		return nil, fmt.Errorf("croquis: load reference: %w", err)
	}
	return img, nil
}

// FitRect letterboxes an imgW×imgH picture into a canvasW×canvasH canvas.
// The picture keeps its aspect ratio, fills the canvas width unless that
// would overflow the height, and is centred. Edges are rounded to whole
// pixels.
func FitRect(canvasW, canvasH, imgW, imgH int) image.Rectangle {
	if imgW <= 0 || imgH <= 0 || canvasW <= 0 || canvasH <= 0 {
		return image.Rectangle{}
	}
	ir := float64(imgH) / float64(imgW)
	dw := float64(canvasW)
	dh := dw * ir
	if dh > float64(canvasH) {
		dh = float64(canvasH)
		dw = dh / ir
	}
	dx := (float64(canvasW) - dw) / 2
	dy := (float64(canvasH) - dh) / 2
	return image.Rect(
		int(math.Round(dx)), int(math.Round(dy)),
		int(math.Round(dx+dw)), int(math.Round(dy+dh)),
	)
}

// ReferenceLayer renders the reference pane: the picture letterboxed on
// white with the grid on top. It also keeps the grid-only overlay shown
// over the drawing pane. Both are rebuilt by Redraw.
type ReferenceLayer struct {
	width, height int
	strategy      GrayscaleStrategy

	img  image.Image
	grid GridConfig
	gray bool

	layer   *Pixmap
	overlay *Pixmap
}

// NewReferenceLayer creates an empty reference pane. A nil strategy
// leaves the picture in colour.
func NewReferenceLayer(width, height int, strategy GrayscaleStrategy) *ReferenceLayer {
	if strategy == nil {
		strategy = NoGrayscale{}
	}
	r := &ReferenceLayer{
		width:    width,
		height:   height,
		strategy: strategy,
		layer:    NewPixmap(width, height),
		overlay:  NewPixmap(width, height),
	}
	r.Redraw()
	return r
}

// Image returns the current reference picture, or nil.
func (r *ReferenceLayer) Image() image.Image { return r.img }

// SetImage replaces the reference picture and redraws.
func (r *ReferenceLayer) SetImage(img image.Image) {
	r.img = img
	r.Redraw()
}

// Grid returns the grid configuration.
func (r *ReferenceLayer) Grid() GridConfig { return r.grid }

// SetGrid changes the grid and redraws.
func (r *ReferenceLayer) SetGrid(cfg GridConfig) {
	r.grid = cfg
	r.Redraw()
}

// Grayscale reports whether the picture is shown in grayscale.
func (r *ReferenceLayer) Grayscale() bool { return r.gray }

// SetGrayscale toggles the grayscale display and redraws.
func (r *ReferenceLayer) SetGrayscale(on bool) {
	r.gray = on
	r.Redraw()
}

// Configure sets the grid and the grayscale display with a single redraw.
func (r *ReferenceLayer) Configure(grid GridConfig, gray bool) {
	r.grid, r.gray = grid, gray
	r.Redraw()
}

// Layer returns the rendered reference pane. Callers must not modify it.
func (r *ReferenceLayer) Layer() *Pixmap { return r.layer }

// Overlay returns the grid on a transparent background, sized like the
// drawing pane. Callers must not modify it.
func (r *ReferenceLayer) Overlay() *Pixmap { return r.overlay }

// Redraw rebuilds the pane and the overlay from the current state.
func (r *ReferenceLayer) Redraw() {
	prims := GridLines(r.grid, r.width, r.height)

	r.layer.Clear(White)
	if r.img != nil {
		r.drawPicture()
	}
	DrawGrid(r.layer, prims)

	r.overlay.Clear(Transparent)
	DrawGrid(r.overlay, prims)

	Logger().Debug("croquis: reference redrawn",
		"divisions", r.grid.Divisions, "grayscale", r.gray, "primitives", len(prims))
}

func (r *ReferenceLayer) drawPicture() {
	rect := FitRect(r.width, r.height, r.img.Bounds().Dx(), r.img.Bounds().Dy())
	if rect.Empty() {
		return
	}
	scaled := NewPixmap(rect.Dx(), rect.Dy())
	draw.BiLinear.Scale(scaled.rgba(), scaled.Bounds(), r.img, r.img.Bounds(), draw.Src, nil)
	if r.gray {
		scaled = r.strategy.Apply(scaled)
	}
	draw.Draw(r.layer.rgba(), rect, scaled.rgba(), image.Point{}, draw.Over)
}
