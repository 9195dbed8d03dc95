// Package schedule holds the deferred-callback abstraction used by the widget
// to clear its error message, plus a manual implementation driven by a virtual
// clock.
package schedule

import (
	"sort"
	"time"
)

// CancelFunc cancels a scheduled callback. Calling it after the callback ran,
// or more than once, is a no-op.
type CancelFunc func()

// Scheduler runs fn once after d has elapsed. Implementations must invoke fn on
// the same logical thread that handles UI events.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
}

// Manual is a Scheduler backed by a virtual clock. Callbacks run synchronously
// inside Advance, in deadline order.
type Manual struct {
	now     time.Duration
	seq     int
	pending map[int]*manualTimer
}

type manualTimer struct {
	seq      int
	deadline time.Duration
	fn       func()
}

// NewManual returns a Manual scheduler with its clock at zero.
func NewManual() *Manual {
	return &Manual{pending: map[int]*manualTimer{}}
}

func (m *Manual) Schedule(d time.Duration, fn func()) CancelFunc {
	m.seq++
	id := m.seq
	m.pending[id] = &manualTimer{seq: id, deadline: m.now + d, fn: fn}
	return func() { delete(m.pending, id) }
}

// Advance moves the clock forward by d and fires every callback whose deadline
// is reached. Callbacks scheduled while firing are honored if they fall within
// the same window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		delete(m.pending, next.seq)
		m.now = next.deadline
		next.fn()
	}
	m.now = target
}

// Pending returns the number of callbacks not yet fired nor cancelled.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

func (m *Manual) nextDue(target time.Duration) *manualTimer {
	due := make([]*manualTimer, 0, len(m.pending))
	for _, t := range m.pending {
		if t.deadline <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline == due[j].deadline {
			return due[i].seq < due[j].seq
		}
		return due[i].deadline < due[j].deadline
	})
	return due[0]
}
