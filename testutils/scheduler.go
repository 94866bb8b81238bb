package testutils

import (
	"sync"
	"time"
)

// ManualScheduler is a utils.TimeProvider whose clock only moves when Advance is called.
// Due functions run synchronously inside Advance, in the order they fall due.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Time
	pending []scheduledFunc
}

type scheduledFunc struct {
	at    time.Time
	delay time.Duration
	f     func()
}

// NewManualScheduler creates a ManualScheduler starting at now
func NewManualScheduler(now time.Time) *ManualScheduler {
	return &ManualScheduler{now: now}
}

// Now returns the scheduler's clock
func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// AfterFunc schedules f to run once the clock moved d past the current time
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, scheduledFunc{at: s.now.Add(d), delay: d, f: f})
}

// Pending returns the delays of the functions which have not run yet, in scheduling order
func (s *ManualScheduler) Pending() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	delays := make([]time.Duration, 0, len(s.pending))
	for _, p := range s.pending {
		delays = append(delays, p.delay)
	}
	return delays
}

// Advance moves the clock by d and runs every function due by then
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now = s.now.Add(d)
	s.mu.Unlock()

	for {
		next, ok := s.popDue()
		if !ok {
			return
		}
		next.f()
	}
}

func (s *ManualScheduler) popDue() (scheduledFunc, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	due := -1
	for i, p := range s.pending {
		if p.at.After(s.now) {
			continue
		}
		if due == -1 || p.at.Before(s.pending[due].at) {
			due = i
		}
	}
	if due == -1 {
		return scheduledFunc{}, false
	}

	next := s.pending[due]
	s.pending = append(s.pending[:due], s.pending[due+1:]...)
	return next, true
}
