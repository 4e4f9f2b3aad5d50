package croquis

import "time"

// Default logical canvas, A4 portrait.
const (
	DefaultCanvasWidth  = 1448
	DefaultCanvasHeight = 2048
)

// Option configures a Studio during creation.
//
// Example:
//
//	// Wall clock, CPU grayscale filter, factory settings
//	s := croquis.New()
//
//	// Settings from disk, progress forwarded to the UI
//	s := croquis.New(croquis.WithConfig(cfg), croquis.WithObserver(ui.update))
type Option func(*options)

// options holds optional configuration for Studio creation.
type options struct {
	width, height int
	clock         Clock
	scheduler     Scheduler
	interval      time.Duration
	caps          Capabilities
	config        Config
	observers     []Observer
	caption       bool
}

// defaultOptions returns the default studio options.
func defaultOptions() options {
	return options{
		width:     DefaultCanvasWidth,
		height:    DefaultCanvasHeight,
		clock:     SystemClock{},
		scheduler: TimeScheduler{},
		interval:  DefaultTickInterval,
		caps:      DefaultCapabilities,
		config:    DefaultConfig(),
	}
}

// WithCanvasSize sets the logical canvas shared by both panes.
// Non-positive sizes are ignored.
func WithCanvasSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithClock injects the time source of the session timer.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithScheduler injects the tick source of the session timer.
//
// Example:
//
//	// Headless: the session only moves on explicit events
//	s := croquis.New(croquis.WithScheduler(croquis.NopScheduler{}))
func WithScheduler(sc Scheduler) Option {
	return func(o *options) {
		if sc != nil {
			o.scheduler = sc
		}
	}
}

// WithTickInterval sets the progress update cadence.
func WithTickInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithCapabilities declares what the rendering backend supports; it
// selects the grayscale strategy.
func WithCapabilities(c Capabilities) Option {
	return func(o *options) {
		o.caps = c
	}
}

// WithConfig sets the initial settings.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg.Normalize()
	}
}

// WithObserver registers fn to be called after every event that changed
// something. It runs outside the studio lock and may call View or Status.
func WithObserver(fn Observer) Option {
	return func(o *options) {
		if fn != nil {
			o.observers = append(o.observers, fn)
		}
	}
}

// WithExportCaption burns the session length and time into exports.
func WithExportCaption(on bool) Option {
	return func(o *options) {
		o.caption = on
	}
}
