package main

import (
	"image"
	"image/color"
	"image/draw"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/croquis"
)

type paneKind uint8

const (
	referencePane paneKind = iota
	drawingPane
)

// backdrop fills the area around the letterboxed canvas.
var backdrop = color.NRGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}

// pane shows one canvas scaled to fit the widget. The drawing pane
// forwards pointer input to the studio in canvas coordinates.
type pane struct {
	widget.BaseWidget

	studio        *croquis.Studio
	kind          paneKind
	width, height int
	raster        *fynecanvas.Raster
}

var (
	_ fyne.Widget       = (*pane)(nil)
	_ fyne.Draggable    = (*pane)(nil)
	_ desktop.Mouseable = (*pane)(nil)
)

func newPane(s *croquis.Studio, kind paneKind, width, height int) *pane {
	p := &pane{studio: s, kind: kind, width: width, height: height}
	p.raster = fynecanvas.NewRaster(p.generate)
	p.raster.ScaleMode = fynecanvas.ImageScalePixels
	p.ExtendBaseWidget(p)
	return p
}

func (p *pane) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.raster)
}

func (p *pane) MinSize() fyne.Size {
	return fyne.NewSize(float32(p.width)/8, float32(p.height)/8)
}

// generate renders the pane at the raster's pixel size.
func (p *pane) generate(w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(backdrop), image.Point{}, draw.Src)

	var src *image.RGBA
	p.studio.View(func(v *croquis.View) {
		src = p.source(v)
	})
	rect := croquis.FitRect(w, h, src.Bounds().Dx(), src.Bounds().Dy())
	xdraw.ApproxBiLinear.Scale(dst, rect, src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// source copies the layers this pane shows. It runs under the studio
// lock, so it only copies.
func (p *pane) source(v *croquis.View) *image.RGBA {
	if p.kind == referencePane {
		return v.Reference.ToImage()
	}
	if v.Composite != nil {
		return v.Composite.ToImage()
	}
	return paper(v.Strokes.ToImage(), v.Overlay.ToImage())
}

// paper flattens layers onto opaque white, so erased stroke pixels show
// as paper rather than the pane backdrop.
func paper(layers ...*image.RGBA) *image.RGBA {
	if len(layers) == 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	r := layers[0].Bounds()
	img := image.NewRGBA(r)
	draw.Draw(img, r, image.White, image.Point{}, draw.Src)
	for _, l := range layers {
		draw.Draw(img, r, l, r.Min, draw.Over)
	}
	return img
}

// toCanvas maps a widget position to logical canvas coordinates.
func (p *pane) toCanvas(pos fyne.Position) (float64, float64) {
	size := p.Size()
	scale := min(size.Width/float32(p.width), size.Height/float32(p.height))
	if scale <= 0 {
		return -1, -1
	}
	offX := (size.Width - float32(p.width)*scale) / 2
	offY := (size.Height - float32(p.height)*scale) / 2
	return float64((pos.X - offX) / scale), float64((pos.Y - offY) / scale)
}

func (p *pane) MouseDown(e *desktop.MouseEvent) {
	if p.kind != drawingPane || e.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := p.toCanvas(e.Position)
	p.studio.Dispatch(croquis.PointerDown{X: x, Y: y})
}

func (p *pane) MouseUp(*desktop.MouseEvent) {
	if p.kind == drawingPane {
		p.studio.Dispatch(croquis.PointerUp{})
	}
}

func (p *pane) Dragged(e *fyne.DragEvent) {
	if p.kind != drawingPane {
		return
	}
	x, y := p.toCanvas(e.Position)
	p.studio.Dispatch(croquis.PointerMove{X: x, Y: y})
}

func (p *pane) DragEnd() {
	if p.kind == drawingPane {
		p.studio.Dispatch(croquis.PointerUp{})
	}
}
