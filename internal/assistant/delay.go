package assistant

import (
	"sync"
	"time"
)

// Scheduler runs at most one pending delayed task. Scheduling a new
// task cancels the previous one (last write wins), which is how typing
// indicators and debounced replies avoid stale callbacks.
type Scheduler struct {
	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// NewScheduler creates an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule arranges fn to run after d, replacing any pending task.
// fn runs on its own goroutine; it is never invoked after Close.
func (s *Scheduler) Schedule(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(d, func() {
		s.mu.Lock()
		// A replaced or closed task fires Stop too late sometimes;
		// the identity check keeps stale callbacks out.
		stale := s.closed || s.timer != t
		if !stale {
			s.timer = nil
		}
		s.mu.Unlock()

		if !stale {
			fn()
		}
	})
	s.timer = t
}

// Cancel drops the pending task, if any.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Close cancels the pending task and rejects future scheduling.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
