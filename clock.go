package croquis

import (
	"sync"
	"time"
)

// DefaultTickInterval is the session progress cadence.
const DefaultTickInterval = 100 * time.Millisecond

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// Ticker is a cancellable periodic callback.
// Stop may be called any number of times.
type Ticker interface {
	Stop()
}

// Scheduler starts periodic callbacks.
type Scheduler interface {
	Every(d time.Duration, fn func()) Ticker
}

// TimeScheduler runs callbacks on a time.Ticker goroutine.
// Callbacks run concurrently with the caller; route them through
// Studio.Dispatch to serialize them with other events.
type TimeScheduler struct{}

// Every calls fn every d until the returned Ticker is stopped.
func (TimeScheduler) Every(d time.Duration, fn func()) Ticker {
	t := &timeTicker{
		t:    time.NewTicker(d),
		done: make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type timeTicker struct {
	t    *time.Ticker
	done chan struct{}
	once sync.Once
}

func (t *timeTicker) run(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.t.C:
			select {
			case <-t.done:
				return
			default:
			}
			fn()
		}
	}
}

func (t *timeTicker) Stop() {
	t.once.Do(func() {
		t.t.Stop()
		close(t.done)
	})
}

// NopScheduler never fires. Headless renders use it to drive a session
// purely through explicit events.
type NopScheduler struct{}

// Every returns a Ticker that never fires.
func (NopScheduler) Every(time.Duration, func()) Ticker { return nopTicker{} }

type nopTicker struct{}

func (nopTicker) Stop() {}
