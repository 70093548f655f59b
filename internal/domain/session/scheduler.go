// internal/domain/session/scheduler.go
package session

import (
	"sync"
	"time"
)

// Scheduler is a single-slot debounce: each Schedule call replaces the
// pending delayed task instead of queueing behind it, so a burst of calls
// collapses into one trailing run. The wrapped function is additionally
// single-flight: a run that starts while a previous one is still executing
// is deferred until that execution returns, never overlapped, so a slow
// in-flight write can never be clobbered by a newer one racing past it.
type Scheduler struct {
	mu       sync.Mutex
	delay    time.Duration
	fn       func()
	timer    *time.Timer
	inFlight bool
	dirty    bool
	stopped  bool
}

// NewScheduler creates a scheduler that runs fn once per trailing delay
func NewScheduler(delay time.Duration, fn func()) *Scheduler {
	return &Scheduler{
		delay: delay,
		fn:    fn,
	}
}

// Schedule arms the timer, cancelling any pending earlier request. When a
// run is in flight the request is remembered and re-armed once it returns.
func (s *Scheduler) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	if s.inFlight {
		s.dirty = true
		return
	}
	if s.timer == nil {
		s.timer = time.AfterFunc(s.delay, s.fire)
		return
	}
	s.timer.Reset(s.delay)
}

// Stop cancels any pending task. A run already in flight is allowed to
// finish; it will not re-arm.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	s.dirty = false
	if s.timer != nil {
		s.timer.Stop()
	}
}

func (s *Scheduler) fire() {
	s.mu.Lock()
	if s.stopped || s.inFlight {
		s.mu.Unlock()
		return
	}
	s.inFlight = true
	s.mu.Unlock()

	s.fn()

	s.mu.Lock()
	s.inFlight = false
	if s.dirty && !s.stopped {
		s.dirty = false
		s.timer.Reset(s.delay)
	}
	s.mu.Unlock()
}
