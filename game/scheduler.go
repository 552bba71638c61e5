package game

import (
	"time"
)

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

// Scheduler is a cancellable single-shot timer polled from the frame loop.
// The owner re-arms it after every tick it wants followed by another, so a
// stopped game simply never re-arms. Arming again supersedes any pending
// deadline, which keeps a tick scheduled for a previous game from firing
// into a fresh one.
type Scheduler struct {
	interval time.Duration
	clock    Clock
	deadline time.Time
	armed    bool
}

func NewScheduler(interval time.Duration, clock Clock) *Scheduler {
	if clock == nil {
		clock = time.Now
	}
	return &Scheduler{
		interval: interval,
		clock:    clock,
	}
}

// Arm schedules the next tick one interval from now.
func (s *Scheduler) Arm() {
	s.deadline = s.clock().Add(s.interval)
	s.armed = true
}

func (s *Scheduler) Cancel() {
	s.armed = false
}

func (s *Scheduler) Armed() bool {
	return s.armed
}

func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Due reports whether the armed deadline has passed. A due tick is consumed:
// the scheduler disarms until Arm is called again.
func (s *Scheduler) Due() bool {
	if !s.armed || s.clock().Before(s.deadline) {
		return false
	}
	s.armed = false
	return true
}
