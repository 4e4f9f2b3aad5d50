// Command croquis is the desktop figure-drawing practice app.
package main

import (
	"flag"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/gogpu/croquis"
)

const appID = "io.gogpu.croquis"

func main() {
	defaultPath, err := croquis.DefaultConfigPath()
	if err != nil {
		defaultPath = "croquis.toml"
	}
	var (
		configPath = flag.String("config", defaultPath, "settings file (TOML)")
		reference  = flag.String("reference", "", "reference image to load at startup")
		caption    = flag.Bool("caption", false, "burn session length and time into exports")
		debug      = flag.Bool("debug", false, "log strokes and timer ticks")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	croquis.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := croquis.Logger()

	cfg, err := croquis.LoadConfig(*configPath)
	if err != nil {
		log.Warn("settings not loaded, using defaults", "path", *configPath, "err", err)
	}

	a := app.NewWithID(appID)
	w := a.NewWindow("Croquis")

	var u *ui
	studio := croquis.New(
		croquis.WithConfig(cfg),
		croquis.WithExportCaption(*caption),
		croquis.WithObserver(func(c croquis.Change, st croquis.Status) {
			fyne.Do(func() {
				if u != nil {
					u.update(c, st)
				}
			})
		}),
	)
	u = newUI(studio, w, croquis.DefaultCanvasWidth, croquis.DefaultCanvasHeight)
	w.SetContent(u.content())
	u.showProgress(studio.Status())

	if *reference != "" {
		if img, err := croquis.LoadReference(*reference); err != nil {
			studio.Dispatch(croquis.ReferenceFailed{Err: err})
		} else {
			studio.Dispatch(croquis.ReferenceLoaded{Image: img})
		}
	}

	// Losing focus mid-stroke must not leave the pen down.
	a.Lifecycle().SetOnExitedForeground(func() {
		studio.Dispatch(croquis.FocusLost{})
	})
	w.SetOnClosed(func() {
		if err := croquis.SaveConfig(*configPath, studio.Status().Config); err != nil {
			log.Warn("settings not saved", "path", *configPath, "err", err)
		}
		studio.Close()
	})

	w.Resize(fyne.NewSize(1280, 900))
	w.ShowAndRun()
}
