package croquis

import "errors"

var (
	// ErrNoFeedback is returned by Export when no session has finished
	// since the last reset.
	ErrNoFeedback = errors.New("croquis: no feedback to export")

	// ErrUnsupportedFormat is returned for reference images and export
	// targets in a format croquis cannot handle.
	ErrUnsupportedFormat = errors.New("croquis: unsupported format")

	// ErrClosed is returned by operations on a closed Studio.
	ErrClosed = errors.New("croquis: studio closed")
)
