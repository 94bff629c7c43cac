package ui

import (
	"errors"
	"io"
	"log"
	"sort"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/catalog"
	"github.com/ivlev/patternviz/internal/config"
)

func newModel(t *testing.T) Model {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(config.Default(), cat, assets.Default(), log.New(io.Discard, "", 0))
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	t.Cleanup(m.host.Close)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// fireAll delivers one tick for every live timer in creation order.
func fireAll(t *testing.T, m Model) Model {
	t.Helper()
	ids := make([]int, 0, len(m.sched.timers))
	for id := range m.sched.timers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		m = update(t, m, timerMsg{id: id})
	}
	return m
}

func runSingleton(t *testing.T, m Model) Model {
	t.Helper()
	m = update(t, m, key(tea.KeyTab))
	m = update(t, m, key(tea.KeyDown))
	if got := m.Selected(); got != "Singleton" {
		t.Fatalf("selected = %q, want Singleton", got)
	}
	return update(t, m, key(tea.KeyEnter))
}

func TestRunWithoutSelection(t *testing.T) {
	m := newModel(t)
	m = update(t, m, key(tea.KeyEnter))

	if m.Message != selectMessage {
		t.Errorf("message = %q, want %q", m.Message, selectMessage)
	}
	if m.Host().Active() {
		t.Error("host started an animation without a selection")
	}
	if !strings.Contains(m.View(), selectMessage) {
		t.Error("view does not show the selection message")
	}
}

func TestRunStartsDiagram(t *testing.T) {
	m := runSingleton(t, newModel(t))

	if m.Running != "Singleton" || !m.Host().Active() {
		t.Fatalf("running=%q active=%v", m.Running, m.Host().Active())
	}
	m = fireAll(t, m)
	if m.Host().Frame() == nil {
		t.Fatal("no frame after delivering ticks")
	}
	if !strings.Contains(m.View(), halfBlockCell) {
		t.Error("diagram pane has no half-block cells")
	}
}

const halfBlockCell = "▀"

func TestResizeUpdatesHost(t *testing.T) {
	m := newModel(t)
	w, h := m.Host().Size()
	if w != m.diagramCols*8 || h != m.diagramRows*16 {
		t.Errorf("host size = %dx%d, want %dx%d", w, h, m.diagramCols*8, m.diagramRows*16)
	}
	if m.diagramCols != 100-sidebarWidth-4 {
		t.Errorf("diagram cols = %d", m.diagramCols)
	}
}

func TestStaleTickDropped(t *testing.T) {
	m := runSingleton(t, newModel(t))
	m = fireAll(t, m)
	var old []int
	for id := range m.sched.timers {
		old = append(old, id)
	}

	// Switching patterns destroys the old ticker.
	m = update(t, m, key(tea.KeyDown))
	m = update(t, m, key(tea.KeyEnter))
	if m.Running != "Factory Method" {
		t.Fatalf("running = %q", m.Running)
	}
	for _, id := range old {
		if m.sched.handle(timerMsg{id: id}) {
			t.Errorf("tick for stopped timer %d was delivered", id)
		}
	}
	if !m.sched.handle(timerMsg{id: m.sched.nextID}) {
		t.Error("tick for the live timer was dropped")
	}
}

func TestSchedulerAfterFiresOnce(t *testing.T) {
	s := newTeaScheduler()
	calls := 0
	timer := s.After(time.Second, func() { calls++ })
	if s.drain() == nil {
		t.Fatal("After queued no command")
	}

	s.handle(timerMsg{id: 1})
	s.handle(timerMsg{id: 1})
	if calls != 1 || s.pending() != 0 {
		t.Errorf("calls=%d pending=%d", calls, s.pending())
	}
	timer.Stop()
}

func TestSchedulerEveryRequeues(t *testing.T) {
	s := newTeaScheduler()
	calls := 0
	timer := s.Every(time.Millisecond, func() { calls++ })
	s.drain()

	for i := 0; i < 3; i++ {
		s.handle(timerMsg{id: 1})
		if s.drain() == nil {
			t.Fatalf("tick %d was not rescheduled", i)
		}
	}
	timer.Stop()
	if s.handle(timerMsg{id: 1}) || calls != 3 {
		t.Errorf("calls = %d after stop", calls)
	}
}

func TestPauseToggle(t *testing.T) {
	m := runSingleton(t, newModel(t))
	m = fireAll(t, m)

	m = update(t, m, key(tea.KeySpace))
	if !m.Paused || !m.Host().Animation().Status().Held {
		t.Fatal("space did not pause")
	}
	m = update(t, m, key(tea.KeySpace))
	if m.Paused {
		t.Error("second space did not resume")
	}
}

func TestCopyCode(t *testing.T) {
	m := runSingleton(t, newModel(t))
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	m = update(t, m, runes("y"))
	if !strings.Contains(copied, "NetworkPrinter") {
		t.Errorf("copied %q", copied)
	}

	m.copy = func(string) error { return errors.New("no clipboard") }
	m = update(t, m, runes("y"))
	if !strings.HasPrefix(m.Message, "Copy failed") {
		t.Errorf("message = %q", m.Message)
	}
}

func TestQuit(t *testing.T) {
	m := runSingleton(t, newModel(t))
	next, cmd := m.Update(runes("q"))
	m = next.(Model)
	if !m.Quitting || cmd == nil {
		t.Fatal("q did not quit")
	}
	if m.Host().Active() {
		t.Error("host still active after quit")
	}
}

func TestCategoryNavigation(t *testing.T) {
	m := newModel(t)
	m = update(t, m, key(tea.KeyDown))
	if m.Categories[m.CatChoice] != catalog.Structural {
		t.Fatalf("category = %v", m.Categories[m.CatChoice])
	}
	if m.Selected() != "" {
		t.Error("changing category kept a pattern selection")
	}
	m = update(t, m, key(tea.KeyDown))
	m = update(t, m, key(tea.KeyDown))
	if m.Categories[m.CatChoice] != catalog.Behavioral {
		t.Errorf("category did not clamp at Behavioral: %v", m.Categories[m.CatChoice])
	}
}
