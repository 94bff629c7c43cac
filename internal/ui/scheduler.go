package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ivlev/patternviz/internal/anim"
)

// timerMsg is delivered when the tea.Tick for timer id elapses.
type timerMsg struct {
	id int
}

// teaScheduler runs animation timers on the bubbletea event loop. Every and
// After only queue commands; Update hands them to the runtime via drain.
type teaScheduler struct {
	nextID int
	timers map[int]*teaTimer
	queue  []tea.Cmd
}

type teaTimer struct {
	id     int
	period time.Duration
	fn     func()
	sched  *teaScheduler
}

func (t *teaTimer) Stop() {
	delete(t.sched.timers, t.id)
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{timers: make(map[int]*teaTimer)}
}

func (s *teaScheduler) Every(period time.Duration, fn func()) anim.Timer {
	return s.add(period, period, fn)
}

func (s *teaScheduler) After(d time.Duration, fn func()) anim.Timer {
	return s.add(d, 0, fn)
}

func (s *teaScheduler) add(delay, period time.Duration, fn func()) *teaTimer {
	s.nextID++
	t := &teaTimer{id: s.nextID, period: period, fn: fn, sched: s}
	s.timers[t.id] = t
	s.schedule(t.id, delay)
	return t
}

func (s *teaScheduler) schedule(id int, d time.Duration) {
	s.queue = append(s.queue, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
}

// handle runs the timer behind msg. Ticks of stopped timers are dropped.
func (s *teaScheduler) handle(msg timerMsg) bool {
	t, ok := s.timers[msg.id]
	if !ok {
		return false
	}
	if t.period > 0 {
		s.schedule(t.id, t.period)
	} else {
		delete(s.timers, t.id)
	}
	t.fn()
	return true
}

// drain returns the queued ticks as one command.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.queue) == 0 {
		return nil
	}
	cmds := s.queue
	s.queue = nil
	return tea.Batch(cmds...)
}

// pending is the number of live timers.
func (s *teaScheduler) pending() int {
	return len(s.timers)
}
