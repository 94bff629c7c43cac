package anim

import (
	"sort"
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer interface {
	Stop()
}

// Scheduler runs callbacks on the caller's event loop. Implementations must
// never invoke two callbacks concurrently.
type Scheduler interface {
	// Every runs fn once per period until the returned timer is stopped.
	Every(period time.Duration, fn func()) Timer
	// After runs fn once after d.
	After(d time.Duration, fn func()) Timer
}

// ManualScheduler is a Scheduler driven by virtual time. Nothing fires until
// Advance or Step is called, which makes every run reproducible.
type ManualScheduler struct {
	now    time.Duration
	nextID int
	timers []*manualTimer
}

type manualTimer struct {
	id      int
	due     time.Duration
	period  time.Duration
	fn      func()
	stopped bool
	sched   *ManualScheduler
}

func (t *manualTimer) Stop() {
	if t.stopped {
		return
	}
	t.stopped = true
	t.sched.remove(t)
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) Every(period time.Duration, fn func()) Timer {
	if period <= 0 {
		period = time.Nanosecond
	}
	return m.add(period, period, fn)
}

func (m *ManualScheduler) After(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	return m.add(d, 0, fn)
}

func (m *ManualScheduler) add(delay, period time.Duration, fn func()) *manualTimer {
	m.nextID++
	t := &manualTimer{id: m.nextID, due: m.now + delay, period: period, fn: fn, sched: m}
	m.timers = append(m.timers, t)
	return t
}

func (m *ManualScheduler) remove(t *manualTimer) {
	for i, x := range m.timers {
		if x == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

// next returns the earliest due timer, ties broken by creation order.
func (m *ManualScheduler) next() *manualTimer {
	if len(m.timers) == 0 {
		return nil
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].due != m.timers[j].due {
			return m.timers[i].due < m.timers[j].due
		}
		return m.timers[i].id < m.timers[j].id
	})
	return m.timers[0]
}

func (m *ManualScheduler) fire(t *manualTimer) {
	m.now = t.due
	if t.period > 0 {
		t.due += t.period
	} else {
		t.stopped = true
		m.remove(t)
	}
	t.fn()
}

// Advance moves virtual time forward by d, firing every callback that falls
// due on the way in deadline order. It returns the number of callbacks run.
func (m *ManualScheduler) Advance(d time.Duration) int {
	target := m.now + d
	fired := 0
	for {
		t := m.next()
		if t == nil || t.due > target {
			break
		}
		m.fire(t)
		fired++
	}
	m.now = target
	return fired
}

// Step jumps to the earliest pending deadline and fires that one callback.
// It reports false when nothing is scheduled.
func (m *ManualScheduler) Step() bool {
	t := m.next()
	if t == nil {
		return false
	}
	m.fire(t)
	return true
}

// Pending returns the number of live timers.
func (m *ManualScheduler) Pending() int {
	return len(m.timers)
}

// Now returns the virtual time elapsed since creation.
func (m *ManualScheduler) Now() time.Duration {
	return m.now
}
