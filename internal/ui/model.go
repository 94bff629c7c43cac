// Package ui is the interactive terminal shell: pattern browser, code pane and
// the live diagram rendered with half-block cells.
package ui

import (
	"log"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ivlev/patternviz/internal/assets"
	"github.com/ivlev/patternviz/internal/catalog"
	"github.com/ivlev/patternviz/internal/config"
	"github.com/ivlev/patternviz/internal/diagram"
)

type pane int

const (
	paneCategories pane = iota
	panePatterns
	paneCode
	numPanes
)

const (
	sidebarWidth = 26
	minCodeRows  = 6
)

const selectMessage = "Select a pattern!"

// Model is the bubbletea model of the shell.
type Model struct {
	Catalog    *catalog.Catalog
	Categories []catalog.Category

	CatChoice  int
	PatChoice  int
	Focus      pane
	CodeScroll int

	// Running is the pattern whose diagram is shown, "" before the first run.
	Running  string
	Message  string
	Paused   bool
	Quitting bool

	width, height int
	diagramCols   int
	diagramRows   int
	codeRows      int

	cfg   config.Config
	host  *diagram.Host
	sched *teaScheduler
	copy  func(string) error
}

// NewModel builds the shell around cat. Diagram construction failures are
// logged to logger.
func NewModel(cfg config.Config, cat *catalog.Catalog, loader assets.Loader, logger *log.Logger) Model {
	sched := newTeaScheduler()
	return Model{
		Catalog:    cat,
		Categories: catalog.Categories(),
		PatChoice:  -1,
		cfg:        cfg,
		sched:      sched,
		host:       diagram.NewHost(sched, loader, diagram.WithFPS(cfg.FPS), diagram.WithLogger(logger)),
		copy:       clipboard.WriteAll,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Host exposes the diagram host, mainly for tests.
func (m Model) Host() *diagram.Host {
	return m.host
}

func (m Model) patternNames() []string {
	if len(m.Categories) == 0 {
		return nil
	}
	return m.Catalog.ByCategory(m.Categories[m.CatChoice])
}

// Selected returns the highlighted pattern name, or "".
func (m Model) Selected() string {
	names := m.patternNames()
	if m.PatChoice < 0 || m.PatChoice >= len(names) {
		return ""
	}
	return names[m.PatChoice]
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case timerMsg:
		m.sched.handle(msg)
	}

	return m, m.sched.drain()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		m.Quitting = true
		m.host.Close()
		return tea.Quit
	case "tab":
		m.Focus = (m.Focus + 1) % numPanes
	case "shift+tab":
		m.Focus = (m.Focus + numPanes - 1) % numPanes
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		m.run()
	case " ":
		if m.Running != "" {
			m.Paused = m.host.TogglePause()
		}
	case "y":
		m.copyCode()
	}
	return nil
}

func (m *Model) move(delta int) {
	switch m.Focus {
	case paneCategories:
		m.CatChoice = clamp(m.CatChoice+delta, 0, len(m.Categories)-1)
		m.PatChoice = -1
	case panePatterns:
		n := len(m.patternNames())
		if m.PatChoice < 0 && delta > 0 {
			m.PatChoice = 0
			return
		}
		m.PatChoice = clamp(m.PatChoice+delta, 0, n-1)
	case paneCode:
		m.CodeScroll = clamp(m.CodeScroll+delta, 0, m.maxScroll())
	}
}

// run shows the highlighted pattern, or asks for a selection.
func (m *Model) run() {
	name := m.Selected()
	if name == "" {
		m.Message = selectMessage
		return
	}
	p, err := m.Catalog.Get(name)
	if err != nil {
		m.Message = err.Error()
		return
	}
	m.Message = ""
	m.Running = p.Name
	m.Paused = false
	m.CodeScroll = 0
	m.host.SelectPattern(p)
}

func (m *Model) copyCode() {
	code := m.code()
	if code == "" {
		return
	}
	if err := m.copy(code); err != nil {
		m.Message = "Copy failed: " + err.Error()
		return
	}
	m.Message = "Code copied to clipboard"
}

// code is the sample of the running pattern, falling back to the highlighted one.
func (m Model) code() string {
	name := m.Running
	if name == "" {
		name = m.Selected()
	}
	if name == "" {
		return ""
	}
	p, err := m.Catalog.Get(name)
	if err != nil {
		return ""
	}
	return p.Code
}

func (m Model) maxScroll() int {
	lines := strings.Count(m.code(), "\n") + 1
	return max(0, lines-m.codeRows)
}

// resize splits the window into sidebar, diagram and code panes and tells the
// host how many pixels the diagram pane covers.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.diagramCols = max(0, w-sidebarWidth-4)
	body := max(0, h-4)
	m.codeRows = max(minCodeRows, body/3)
	m.diagramRows = max(0, body-m.codeRows-2)
	m.CodeScroll = clamp(m.CodeScroll, 0, m.maxScroll())
	m.host.OnHostResize(m.diagramCols*m.cfg.CellWidth, m.diagramRows*m.cfg.CellHeight)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
