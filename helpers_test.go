package croquis

import (
	"sync"
	"time"
)

// Test helpers shared across package tests.

var epoch = time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{now: epoch} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// manualScheduler records schedules and fires them on demand.
type manualScheduler struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

type manualTicker struct {
	fn      func()
	stopped bool
	stops   int
}

func (t *manualTicker) Stop() {
	t.stopped = true
	t.stops++
}

func (s *manualScheduler) Every(_ time.Duration, fn func()) Ticker {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTicker{fn: fn}
	s.tickers = append(s.tickers, t)
	return t
}

// Fire invokes every active ticker once and returns how many fired.
func (s *manualScheduler) Fire() int {
	s.mu.Lock()
	active := make([]*manualTicker, 0, len(s.tickers))
	for _, t := range s.tickers {
		if !t.stopped {
			active = append(active, t)
		}
	}
	s.mu.Unlock()

	for _, t := range active {
		t.fn()
	}
	return len(active)
}

// FireStale invokes every ticker, including stopped ones, the way a
// callback already in flight at cancel time would arrive.
func (s *manualScheduler) FireStale() {
	s.mu.Lock()
	all := append([]*manualTicker(nil), s.tickers...)
	s.mu.Unlock()
	for _, t := range all {
		t.fn()
	}
}

// Active returns the number of tickers not yet stopped.
func (s *manualScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tickers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// runFor advances the clock in tick-sized steps, firing the scheduler
// after each step, until cond holds or limit elapses. It returns the
// elapsed time.
func runFor(clock *fakeClock, sched *manualScheduler, step, limit time.Duration, cond func() bool) time.Duration {
	var elapsed time.Duration
	for elapsed < limit {
		clock.Advance(step)
		elapsed += step
		sched.Fire()
		if cond() {
			break
		}
	}
	return elapsed
}
