package croquis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status is a snapshot of the studio for display.
type Status struct {
	State     State
	Progress  Progress
	SessionID uuid.UUID

	Tool    Tool
	Drawing bool
	Config  Config

	HasReference bool
	HasFeedback  bool
	// Grayscale names the grayscale strategy in use.
	Grayscale string
}

// View gives read access to the rendered layers. The pixmaps must not be
// modified or retained past the View callback.
type View struct {
	Reference *Pixmap
	Overlay   *Pixmap
	Strokes   *Pixmap
	// Composite and Feedback are nil until a session finishes.
	Composite *Pixmap
	Feedback  *Feedback
	Status    Status
}

// Studio owns the practice components and applies events to them one at
// a time. It is safe for concurrent use: pointer input, timer ticks and
// UI events may be dispatched from any goroutine.
type Studio struct {
	mu   sync.Mutex
	opts options
	cfg  Config

	session    *Session
	strokes    *StrokeEngine
	reference  *ReferenceLayer
	compositor *Compositor

	feedback *Feedback
	// composite is replaced, never modified, so Export may read it after
	// the lock is released.
	composite *Pixmap

	closed bool
}

// New creates a studio with an idle session and a blank drawing pane.
func New(opts ...Option) *Studio {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	strategy := SelectGrayscale(o.caps)
	s := &Studio{
		opts:       o,
		compositor: NewCompositor(strategy),
		reference:  NewReferenceLayer(o.width, o.height, strategy),
	}
	s.session = NewSession(o.clock, o.scheduler, o.interval, func(gen uint64) {
		s.Dispatch(tick{gen: gen})
	})
	s.strokes = NewStrokeEngine(o.width, o.height, s.session)
	s.applyConfig(o.config)

	Logger().Info("croquis: studio created",
		"width", o.width, "height", o.height, "grayscale", strategy.Name())
	return s
}

// Dispatch applies ev and then notifies observers of what changed.
// Events on a closed studio are dropped.
func (s *Studio) Dispatch(ev Event) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	changed := s.handle(ev)
	st := s.statusLocked()
	observers := s.opts.observers
	s.mu.Unlock()

	if changed == 0 {
		return
	}
	for _, fn := range observers {
		fn(changed, st)
	}
}

func (s *Studio) handle(ev Event) Change {
	switch ev := ev.(type) {
	case PointerDown:
		if s.strokes.Begin(ev.X, ev.Y) {
			return ChangeStrokes
		}
	case PointerMove:
		if s.strokes.Continue(ev.X, ev.Y) {
			return ChangeStrokes
		}
	case PointerUp, FocusLost:
		s.strokes.End()
	case Toggle:
		switch s.session.State() {
		case Idle, Finished:
			return s.start()
		case Running:
			return s.pause()
		case Paused:
			return s.resume()
		}
	case Start:
		return s.start()
	case Pause:
		return s.pause()
	case Resume:
		return s.resume()
	case Abandon:
		if s.session.Abandon() {
			return s.finish("abandoned")
		}
	case Reset:
		return s.reset()
	case ClearStrokes:
		s.strokes.Clear()
		return ChangeStrokes
	case ToolSelected:
		if s.strokes.Tool() != ev.Tool {
			s.strokes.SetTool(ev.Tool)
			return ChangeTool
		}
	case ConfigChanged:
		return s.applyConfig(ev.Config)
	case ReferenceLoaded:
		if ev.Image == nil {
			return 0
		}
		s.reference.SetImage(ev.Image)
		Logger().Info("croquis: reference loaded", "size", ev.Image.Bounds().Size())
		return ChangeReference
	case ReferenceFailed:
		Logger().Warn("croquis: reference not loaded", "err", ev.Err)
	case tick:
		return s.tick(ev.gen)
	}
	return 0
}

func (s *Studio) start() Change {
	var changed Change
	if s.session.State() == Finished {
		changed = s.discard()
	}
	if !s.session.Start(s.cfg.Duration) {
		return changed
	}
	Logger().Info("croquis: session started",
		"session", s.session.ID(), "duration", s.session.Duration())
	return changed | ChangeSession | ChangeProgress
}

func (s *Studio) pause() Change {
	if !s.session.Pause() {
		return 0
	}
	if s.session.State() == Finished {
		return s.finish("expired")
	}
	s.strokes.End()
	Logger().Info("croquis: session paused", "session", s.session.ID())
	return ChangeSession
}

func (s *Studio) resume() Change {
	if !s.session.Resume() {
		return 0
	}
	Logger().Info("croquis: session resumed", "session", s.session.ID())
	return ChangeSession | ChangeProgress
}

func (s *Studio) reset() Change {
	s.session.Reset()
	s.session.SetDuration(s.cfg.Duration)
	changed := s.discard()
	Logger().Info("croquis: session reset")
	return changed | ChangeSession | ChangeProgress
}

// discard clears the drawing pane and drops the review.
func (s *Studio) discard() Change {
	s.strokes.End()
	s.strokes.Clear()
	changed := ChangeStrokes
	if s.feedback != nil {
		s.feedback, s.composite = nil, nil
		changed |= ChangeFeedback
	}
	return changed
}

func (s *Studio) tick(gen uint64) Change {
	before := s.session.Progress()
	if s.session.Tick(gen) {
		return s.finish("expired")
	}
	if p := s.session.Progress(); p != before {
		if p.Band != before.Band {
			Logger().Debug("croquis: progress band", "band", p.Band, "remaining", p.Remaining)
		}
		return ChangeProgress
	}
	return 0
}

// finish locks drawing and renders the review. The session has already
// moved to Finished.
func (s *Studio) finish(reason string) Change {
	s.strokes.End()
	s.snapshot(s.session.ID(), time.Duration(s.session.Duration())*time.Second)
	Logger().Info("croquis: session finished", "session", s.session.ID(), "reason", reason)
	return ChangeSession | ChangeProgress | ChangeFeedback
}

// snapshot copies both panes into a fresh review of the given session.
func (s *Studio) snapshot(id uuid.UUID, d time.Duration) {
	fb := s.compositor.RenderFeedback(s.reference.Layer(), s.strokes.Layer(), s.cfg.ReferenceOpacity)
	fb.SessionID, fb.Duration = id, d
	s.feedback = fb
	s.composite = s.compositor.CompositeFeedback(fb)
}

// applyConfig installs cfg and refreshes whatever depends on the fields
// that changed.
func (s *Studio) applyConfig(cfg Config) Change {
	cfg = cfg.Normalize()
	old := s.cfg
	s.cfg = cfg

	s.strokes.SetPenWidth(cfg.PenWidth)
	s.strokes.SetEraserWidth(cfg.EraserWidth)
	s.session.SetDuration(cfg.Duration)

	changed := ChangeConfig
	if s.session.State() == Idle && old.Duration != cfg.Duration {
		changed |= ChangeProgress
	}

	gridChanged := s.reference.Grid() != cfg.Grid()
	grayChanged := s.reference.Grayscale() != cfg.ReferenceGrayscale
	if gridChanged || grayChanged {
		s.reference.Configure(cfg.Grid(), cfg.ReferenceGrayscale)
		changed |= ChangeReference
	}

	if s.feedback != nil {
		switch {
		case grayChanged:
			s.snapshot(s.feedback.SessionID, s.feedback.Duration)
			changed |= ChangeFeedback
		case old.ReferenceOpacity != cfg.ReferenceOpacity:
			s.feedback.Opacity = cfg.ReferenceOpacity
			s.composite = s.compositor.CompositeFeedback(s.feedback)
			changed |= ChangeFeedback
		}
	}
	return changed
}

// Status returns a snapshot of the studio state.
func (s *Studio) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *Studio) statusLocked() Status {
	return Status{
		State:        s.session.State(),
		Progress:     s.session.Progress(),
		SessionID:    s.session.ID(),
		Tool:         s.strokes.Tool(),
		Drawing:      s.strokes.Drawing(),
		Config:       s.cfg,
		HasReference: s.reference.Image() != nil,
		HasFeedback:  s.feedback != nil,
		Grayscale:    s.compositor.Strategy().Name(),
	}
}

// View calls fn with the current layers while holding the studio lock.
// Events dispatched meanwhile wait until fn returns.
func (s *Studio) View(fn func(v *View)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&View{
		Reference: s.reference.Layer(),
		Overlay:   s.reference.Overlay(),
		Strokes:   s.strokes.Layer(),
		Composite: s.composite,
		Feedback:  s.feedback,
		Status:    s.statusLocked(),
	})
}

// Export renders the review at the configured height and hands it to
// sink. A nil sink only renders. The layers are untouched, so a failed
// export can be retried.
func (s *Studio) Export(ctx context.Context, sink ExportSink) (Artifact, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Artifact{}, ErrClosed
	}
	if s.composite == nil {
		s.mu.Unlock()
		return Artifact{}, ErrNoFeedback
	}
	composite := s.composite
	height := s.cfg.ExportHeight
	now := s.opts.clock.Now()
	a := Artifact{
		Name:      SuggestedFilename(now, height),
		SessionID: s.feedback.SessionID,
		Duration:  s.feedback.Duration,
		CreatedAt: now,
	}
	caption := s.opts.caption
	s.mu.Unlock()

	a.Image = ExportRaster(composite, height)
	if caption {
		Caption(a.Image, captionText(a))
	}
	if sink == nil {
		return a, nil
	}
	if err := sink.Export(ctx, a); err != nil {
		Logger().Warn("croquis: export failed", "name", a.Name, "err", err)
		return a, fmt.Errorf("croquis: export %s: %w", a.Name, err)
	}
	return a, nil
}

// Close stops the session timer. Later events are dropped.
func (s *Studio) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.session.Close()
	Logger().Info("croquis: studio closed")
}
