package croquis

import (
	"log/slog"
	"sync/atomic"
)

// silent is the default logger. slog.DiscardHandler reports every level
// as disabled, so call sites skip building their attributes.
var silent = slog.New(slog.DiscardHandler)

var activeLogger atomic.Pointer[slog.Logger]

func init() {
	activeLogger.Store(silent)
}

// SetLogger routes croquis diagnostics to l. Nothing is logged until it
// is called; SetLogger(nil) silences the package again. It may be called
// while a studio is running.
//
// Levels:
//   - [slog.LevelDebug]: stroke starts, progress band changes
//   - [slog.LevelInfo]: session transitions, reference loads, exports
//   - [slog.LevelWarn]: grayscale fallback, rejected references, failed exports
//
// Example:
//
//	croquis.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	activeLogger.Store(l)
}

// Logger returns the logger set by SetLogger. The commands use it so
// their own messages share the handler.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
