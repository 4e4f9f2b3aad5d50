package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/croquis"
	imgio "github.com/gogpu/croquis/internal/image"
)

var divisionChoices = []string{"0", "2", "3", "4", "5", "6", "8", "10", "12"}

// ui holds the widgets that follow the studio state.
type ui struct {
	studio *croquis.Studio
	window fyne.Window

	reference *pane
	drawing   *pane

	startBtn *widget.Button
	progress *widget.ProgressBar
	band     *fynecanvas.Rectangle
	lockMsg  *widget.Label
	tool     *widget.RadioGroup
	saveBtn  *widget.Button

	cfg croquis.Config
}

func newUI(s *croquis.Studio, w fyne.Window, width, height int) *ui {
	u := &ui{
		studio:    s,
		window:    w,
		reference: newPane(s, referencePane, width, height),
		drawing:   newPane(s, drawingPane, width, height),
		cfg:       s.Status().Config,
	}
	return u
}

// content lays out the timer bar, the two panes and the settings column.
func (u *ui) content() fyne.CanvasObject {
	u.startBtn = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		u.studio.Dispatch(croquis.Toggle{})
	})
	giveUp := widget.NewButtonWithIcon("Give up", theme.MediaStopIcon(), func() {
		u.studio.Dispatch(croquis.Abandon{})
	})
	reset := widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), func() {
		u.studio.Dispatch(croquis.Reset{})
	})
	u.saveBtn = widget.NewButtonWithIcon("Save PNG", theme.DocumentSaveIcon(), u.export)
	u.saveBtn.Disable()

	u.progress = widget.NewProgressBar()
	u.progress.Max = 1
	u.band = fynecanvas.NewRectangle(croquis.BandNormal.Color())
	u.band.SetMinSize(fyne.NewSize(12, 12))
	u.lockMsg = widget.NewLabel("")

	top := container.NewBorder(nil, nil,
		container.NewHBox(u.startBtn, giveUp, reset),
		container.NewHBox(u.lockMsg, u.saveBtn),
		container.NewBorder(nil, nil, u.band, nil, u.progress),
	)
	panes := container.NewGridWithColumns(2, u.reference, u.drawing)
	return container.NewBorder(top, nil, nil, u.settings(), panes)
}

func (u *ui) settings() fyne.CanvasObject {
	load := widget.NewButtonWithIcon("Reference...", theme.FolderOpenIcon(), u.openReference)

	divisions := widget.NewSelect(divisionChoices, func(v string) { u.set("divisions", v) })
	divisions.SetSelected(strconv.Itoa(u.cfg.Divisions))

	lineWidth := intEntry(u.cfg.LineWidth, func(v string) { u.set("lineWidth", v) })
	subGrid := widget.NewCheck("Sub-grid", func(on bool) { u.set("subGrid", strconv.FormatBool(on)) })
	subGrid.SetChecked(u.cfg.SubGrid)
	gray := widget.NewCheck("Grayscale reference", func(on bool) {
		u.set("referenceGrayscale", strconv.FormatBool(on))
	})
	gray.SetChecked(u.cfg.ReferenceGrayscale)

	u.tool = widget.NewRadioGroup([]string{croquis.Pen.String(), croquis.Eraser.String()}, func(v string) {
		u.studio.Dispatch(croquis.ToolSelected{Tool: croquis.ParseTool(v)})
	})
	u.tool.Horizontal = true
	u.tool.SetSelected(croquis.Pen.String())
	penWidth := intEntry(u.cfg.PenWidth, func(v string) { u.set("penWidth", v) })
	eraserWidth := intEntry(u.cfg.EraserWidth, func(v string) { u.set("eraserWidth", v) })
	clearBtn := widget.NewButtonWithIcon("Clear drawing", theme.ContentClearIcon(), func() {
		u.studio.Dispatch(croquis.ClearStrokes{})
	})

	duration := intEntry(u.cfg.Duration, func(v string) { u.set("duration", v) })
	opacity := widget.NewSlider(0, 100)
	opacity.Step = 1
	opacity.SetValue(u.cfg.ReferenceOpacity * 100)
	opacity.OnChanged = func(v float64) { u.set("aOpacity", strconv.Itoa(int(v))) }

	form := widget.NewForm(
		widget.NewFormItem("Grid", divisions),
		widget.NewFormItem("Line width", lineWidth),
		widget.NewFormItem("", subGrid),
		widget.NewFormItem("", gray),
		widget.NewFormItem("Tool", u.tool),
		widget.NewFormItem("Pen", penWidth),
		widget.NewFormItem("Eraser", eraserWidth),
		widget.NewFormItem("Seconds", duration),
		widget.NewFormItem("Reference %", opacity),
	)
	return container.NewVBox(load, form, clearBtn)
}

func intEntry(v int, apply func(string)) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.Itoa(v))
	e.OnSubmitted = apply
	return e
}

// set applies one settings field and pushes the whole config.
func (u *ui) set(name, raw string) {
	if !u.cfg.SetField(name, raw) {
		return
	}
	u.studio.Dispatch(croquis.ConfigChanged{Config: u.cfg})
}

func (u *ui) openReference() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer func() { _ = reader.Close() }()
		img, err := croquis.DecodeReference(reader)
		if err != nil {
			u.studio.Dispatch(croquis.ReferenceFailed{Err: err})
			dialog.ShowError(err, u.window)
			return
		}
		u.studio.Dispatch(croquis.ReferenceLoaded{Image: img})
	}, u.window)
	fd.SetFilter(storage.NewExtensionFileFilter(imgio.Extensions))
	fd.Show()
}

func (u *ui) export() {
	a, err := u.studio.Export(context.Background(), nil)
	if err != nil {
		dialog.ShowError(err, u.window)
		return
	}
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		format := strings.TrimPrefix(strings.ToLower(writer.URI().Extension()), ".")
		sink := croquis.WriterSink{W: writer, Format: format}
		err = sink.Export(context.Background(), a)
		if cerr := writer.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			if errors.Is(err, croquis.ErrUnsupportedFormat) {
				err = fmt.Errorf("save as .png or .pdf: %w", err)
			}
			dialog.ShowError(err, u.window)
		}
	}, u.window)
	fd.SetFileName(a.Name)
	fd.Show()
}

// update reflects a studio change in the widgets. It runs on the UI
// goroutine.
func (u *ui) update(c croquis.Change, st croquis.Status) {
	if c.Has(croquis.ChangeReference) {
		u.reference.Refresh()
	}
	if c&(croquis.ChangeStrokes|croquis.ChangeReference|croquis.ChangeFeedback) != 0 {
		u.drawing.Refresh()
	}
	if c&(croquis.ChangeProgress|croquis.ChangeSession) != 0 {
		u.showProgress(st)
	}
	if c.Has(croquis.ChangeTool) {
		u.tool.SetSelected(st.Tool.String())
	}
	if st.HasFeedback {
		u.saveBtn.Enable()
	} else {
		u.saveBtn.Disable()
	}
}

func (u *ui) showProgress(st croquis.Status) {
	p := st.Progress
	u.progress.TextFormatter = func() string { return fmt.Sprintf("%d s", p.Remaining) }
	u.progress.SetValue(p.Ratio)
	u.band.FillColor = p.Band.Color()
	u.band.Refresh()

	switch st.State {
	case croquis.Running:
		u.startBtn.SetText("Pause")
		u.startBtn.SetIcon(theme.MediaPauseIcon())
		u.lockMsg.SetText("")
	case croquis.Paused:
		u.startBtn.SetText("Resume")
		u.startBtn.SetIcon(theme.MediaPlayIcon())
		u.lockMsg.SetText("Paused")
	case croquis.Finished:
		u.startBtn.SetText("Start")
		u.startBtn.SetIcon(theme.MediaPlayIcon())
		u.lockMsg.SetText("Time is up")
	default:
		u.startBtn.SetText("Start")
		u.startBtn.SetIcon(theme.MediaPlayIcon())
		u.lockMsg.SetText("")
	}
}
