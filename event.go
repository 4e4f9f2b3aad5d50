package croquis

import "image"

// Event is an input to Studio.Dispatch.
type Event interface {
	event()
}

// PointerDown starts a stroke at a logical canvas position.
type PointerDown struct{ X, Y float64 }

// PointerMove extends the current stroke.
type PointerMove struct{ X, Y float64 }

// PointerUp ends the current stroke.
type PointerUp struct{}

// FocusLost ends the current stroke when the window loses focus or is
// hidden.
type FocusLost struct{}

// Toggle is the start button: it starts an idle or finished session,
// pauses a running one and resumes a paused one.
type Toggle struct{}

// Start begins a fresh session with the configured duration.
type Start struct{}

// Pause freezes a running session.
type Pause struct{}

// Resume continues a paused session.
type Resume struct{}

// Abandon ends the session early and shows the feedback.
type Abandon struct{}

// Reset returns to idle, clearing strokes and feedback.
type Reset struct{}

// ClearStrokes wipes the drawing pane. It is not gated by the session.
type ClearStrokes struct{}

// ToolSelected picks the tool for the next stroke.
type ToolSelected struct{ Tool Tool }

// ConfigChanged replaces the settings. It redraws but never resets.
type ConfigChanged struct{ Config Config }

// ReferenceLoaded replaces the reference picture.
type ReferenceLoaded struct{ Image image.Image }

// ReferenceFailed reports a reference that could not be decoded. The
// current picture is kept.
type ReferenceFailed struct{ Err error }

// tick is a scheduled timer callback of one schedule generation.
type tick struct{ gen uint64 }

func (PointerDown) event()     {}
func (PointerMove) event()     {}
func (PointerUp) event()       {}
func (FocusLost) event()       {}
func (Toggle) event()          {}
func (Start) event()           {}
func (Pause) event()           {}
func (Resume) event()          {}
func (Abandon) event()         {}
func (Reset) event()           {}
func (ClearStrokes) event()    {}
func (ToolSelected) event()    {}
func (ConfigChanged) event()   {}
func (ReferenceLoaded) event() {}
func (ReferenceFailed) event() {}
func (tick) event()            {}

// Change is a set of flags describing what an event altered.
type Change uint16

const (
	// ChangeStrokes means the stroke layer changed.
	ChangeStrokes Change = 1 << iota
	// ChangeReference means the reference pane or grid overlay changed.
	ChangeReference
	// ChangeSession means the timer state changed.
	ChangeSession
	// ChangeProgress means the countdown display changed.
	ChangeProgress
	// ChangeFeedback means the review snapshot appeared, changed or went away.
	ChangeFeedback
	// ChangeConfig means settings changed.
	ChangeConfig
	// ChangeTool means the selected tool changed.
	ChangeTool
)

// Has reports whether all flags in f are set.
func (c Change) Has(f Change) bool { return c&f == f }

// Observer is notified after an event changed the studio.
type Observer func(Change, Status)
