// Package croquis is the core of a timed figure-drawing practice tool.
//
// # Overview
//
// A reference picture is shown beside a blank drawing pane, both covered
// by the same guide grid. A countdown limits the session: drawing is only
// accepted while it runs. When time is up, or the session is abandoned,
// the two panes are composited into one review image that can be
// exported.
//
// # Quick Start
//
//	s := croquis.New(croquis.WithObserver(func(c croquis.Change, st croquis.Status) {
//	    // repaint whatever c says changed
//	}))
//	defer s.Close()
//
//	img, err := croquis.LoadReference("model.jpg")
//	if err == nil {
//	    s.Dispatch(croquis.ReferenceLoaded{Image: img})
//	}
//	s.Dispatch(croquis.Start{})
//	s.Dispatch(croquis.PointerDown{X: 100, Y: 200})
//	s.Dispatch(croquis.PointerMove{X: 140, Y: 260})
//	s.Dispatch(croquis.PointerUp{})
//
//	// after the session finishes
//	_, err = s.Export(ctx, croquis.DirSink{Dir: "."})
//
// # Architecture
//
// The package is organized into:
//   - Grid geometry: GridLines, Dash
//   - Panes: ReferenceLayer, StrokeEngine
//   - Timer: Session, Clock, Scheduler
//   - Review: Compositor, GrayscaleStrategy, ExportSink
//   - Coordination: Studio, Event, Config
//   - Internal: raster (coverage), blend (compositing), filter (colour matrix)
//
// # Coordinate System
//
// Both panes share one logical canvas, 1448×2048 by default:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Pixels
//
// Pixmaps hold premultiplied RGBA8 with a tight stride, the layout of
// image.RGBA.
package croquis

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
