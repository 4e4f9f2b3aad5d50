package croquis

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session duration bounds in seconds.
const (
	MinDuration     = 1
	MaxDuration     = 3600
	DefaultDuration = 60
)

// Progress band thresholds on the remaining ratio.
const (
	criticalRatio = 0.2
	warningRatio  = 0.5
)

// State is the session timer state.
type State uint8

const (
	// Idle is the state before the first start and after a reset.
	Idle State = iota
	// Running counts down and accepts drawing input.
	Running
	// Paused holds the remaining time.
	Paused
	// Finished is entered on expiry or abandon. Drawing is locked.
	Finished
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Band is the progress colour tier.
type Band uint8

const (
	// BandNormal is more than half the time remaining.
	BandNormal Band = iota
	// BandWarning is at most half remaining.
	BandWarning
	// BandCritical is at most a fifth remaining.
	BandCritical
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandNormal:
		return "normal"
	case BandWarning:
		return "warning"
	case BandCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Color returns the progress bar colour of the band.
func (b Band) Color() RGBA {
	switch b {
	case BandWarning:
		return Hex("#f1c40f")
	case BandCritical:
		return Hex("#e74c3c")
	default:
		return Hex("#2ecc71")
	}
}

// bandFor classifies a remaining ratio.
func bandFor(ratio float64) Band {
	switch {
	case ratio <= criticalRatio:
		return BandCritical
	case ratio <= warningRatio:
		return BandWarning
	default:
		return BandNormal
	}
}

// Progress is the countdown display state.
type Progress struct {
	// Remaining is whole seconds left, rounded up.
	Remaining int
	// Ratio is Remaining over the session duration, in [0, 1].
	Ratio float64
	Band  Band
}

// Session is the timer state machine. It decides whether drawing input
// is accepted. A Session is safe for concurrent use, so ticks may arrive
// on the scheduler goroutine. Studio additionally serializes them with
// pointer input.
type Session struct {
	mu sync.Mutex

	clock    Clock
	sched    Scheduler
	interval time.Duration
	notify   func(gen uint64)

	id       uuid.UUID
	state State
	// duration is the length of the current or last started session;
	// next is the length the next Start falls back to.
	duration int
	next     int
	endAt    time.Time

	remainingOnPause int
	hasRemainder     bool

	ticker   Ticker
	gen      uint64
	progress Progress
}

// NewSession creates an idle session. Scheduled ticks call notify with
// their generation; the receiver must hand it back to Tick. A nil notify
// calls Tick directly.
func NewSession(clock Clock, sched Scheduler, interval time.Duration, notify func(gen uint64)) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	if sched == nil {
		sched = TimeScheduler{}
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	s := &Session{
		clock:    clock,
		sched:    sched,
		interval: interval,
		notify:   notify,
		duration: DefaultDuration,
		next:     DefaultDuration,
	}
	s.progress = s.idleProgress()
	return s
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ID returns the identifier of the current or last started session.
// It is the zero UUID before the first start.
func (s *Session) ID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Duration returns the length in seconds of the current or last started
// session. While idle it is the length the next start will use.
func (s *Session) Duration() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration
}

// Progress returns the last computed countdown state.
func (s *Session) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// CanAcceptInput reports whether drawing is allowed. It is the only
// input lock predicate.
func (s *Session) CanAcceptInput() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == Running
}

// SetDuration stages the length of the next start. A running, paused or
// finished session keeps the length it was started with; while idle the
// displayed remaining time follows the staged value.
func (s *Session) SetDuration(sec int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = clampInt(sec, MinDuration, MaxDuration)
	if s.state == Idle {
		s.duration = s.next
		s.progress = s.idleProgress()
	}
}

// Start begins a fresh countdown of sec seconds. It is valid from Idle
// or Finished and reports whether the transition happened.
func (s *Session) Start(sec int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Idle && s.state != Finished {
		return false
	}
	s.stopTicker()
	s.duration = clampInt(sec, MinDuration, MaxDuration)
	s.next = s.duration
	s.endAt = s.clock.Now().Add(time.Duration(s.duration) * time.Second)
	s.hasRemainder = false
	s.id = uuid.New()
	s.state = Running
	s.update()
	s.startTicker()
	return true
}

// Pause freezes the countdown. Valid from Running. A pause that lands
// after the deadline, before the tick noticed it, finishes the session
// instead; check State afterwards.
func (s *Session) Pause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Running {
		return false
	}
	remain := ceilSeconds(s.endAt.Sub(s.clock.Now()))
	if remain == 0 {
		s.finish()
		return true
	}
	s.stopTicker()
	s.remainingOnPause = remain
	s.hasRemainder = true
	s.state = Paused
	return true
}

// Resume continues a paused countdown from the stored remainder.
func (s *Session) Resume() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Paused || !s.hasRemainder {
		return false
	}
	s.stopTicker()
	s.endAt = s.clock.Now().Add(time.Duration(s.remainingOnPause) * time.Second)
	s.hasRemainder = false
	s.state = Running
	s.update()
	s.startTicker()
	return true
}

// Abandon ends a running or paused session immediately, exactly like
// expiry.
func (s *Session) Abandon() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Running && s.state != Paused {
		return false
	}
	s.finish()
	return true
}

// Reset returns to Idle from any state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTicker()
	s.hasRemainder = false
	s.state = Idle
	s.duration = s.next
	s.progress = s.idleProgress()
}

// Tick recomputes progress for the tick of generation gen and reports
// whether the session expired on it. A tick from a cancelled or
// superseded schedule is ignored.
func (s *Session) Tick(gen uint64) (expired bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.ticker == nil || s.state != Running {
		return false
	}
	if s.update() > 0 {
		return false
	}
	s.finish()
	return true
}

// Close cancels any outstanding tick.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTicker()
}

// update recomputes progress and returns the time left.
func (s *Session) update() time.Duration {
	left := max(0, s.endAt.Sub(s.clock.Now()))
	remain := ceilSeconds(left)
	ratio := float64(remain) / float64(s.duration)
	ratio = max(0, min(1, ratio))
	s.progress = Progress{Remaining: remain, Ratio: ratio, Band: bandFor(ratio)}
	return left
}

func (s *Session) finish() {
	s.stopTicker()
	s.hasRemainder = false
	s.state = Finished
	s.progress = Progress{Remaining: 0, Ratio: 0, Band: BandCritical}
}

func (s *Session) idleProgress() Progress {
	return Progress{Remaining: s.duration, Ratio: 0, Band: BandNormal}
}

func (s *Session) startTicker() {
	s.gen++
	gen := s.gen
	s.ticker = s.sched.Every(s.interval, func() {
		if s.notify != nil {
			s.notify(gen)
			return
		}
		s.Tick(gen)
	})
}

// stopTicker cancels the current schedule. Safe to call repeatedly.
func (s *Session) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	s.gen++
}

// ceilSeconds rounds a non-negative duration up to whole seconds.
func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
