package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ldi/tasklist/internal/schedule"
)

// timerFiredMsg is delivered by a tea.Tick armed through TickScheduler.
type timerFiredMsg struct {
	id int
}

// TickScheduler implements schedule.Scheduler on top of the bubbletea event
// loop: every scheduled callback becomes a tea.Tick command, and fires from
// Update when its message comes back, unless it was cancelled meanwhile.
type TickScheduler struct {
	seq     int
	pending map[int]func()
	queued  []tea.Cmd
}

func NewTickScheduler() *TickScheduler {
	return &TickScheduler{pending: map[int]func(){}}
}

func (s *TickScheduler) Schedule(d time.Duration, fn func()) schedule.CancelFunc {
	s.seq++
	id := s.seq
	s.pending[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))

	return func() { delete(s.pending, id) }
}

// Commands returns the ticks armed since the last call.
func (s *TickScheduler) Commands() tea.Cmd {
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Fire runs the callback behind msg if it is still pending.
func (s *TickScheduler) Fire(msg timerFiredMsg) {
	fn, ok := s.pending[msg.id]
	if !ok {
		return
	}
	delete(s.pending, msg.id)
	fn()
}

func (s *TickScheduler) Pending() int {
	return len(s.pending)
}

var _ schedule.Scheduler = (*TickScheduler)(nil)
