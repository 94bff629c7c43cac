package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ivlev/patternviz/internal/canvas"
)

var diagramBackground = color.RGBA{30, 30, 36, 255}

var styles = struct {
	title    lipgloss.Style
	pane     lipgloss.Style
	focused  lipgloss.Style
	heading  lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	message  lipgloss.Style
	help     lipgloss.Style
	muted    lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00BFFF")).
		Padding(0, 1),

	pane: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#555555")),

	focused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#00BFFF")),

	heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFF00")),

	item: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#DDDDDD")),

	selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color("#00BFFF")),

	message: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF0000")),

	help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#777777")),

	muted: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#999999")),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	header := styles.title.Render("Design Patterns")
	if m.Running != "" {
		status := "running"
		if m.Paused {
			status = "paused"
		}
		header += styles.help.Render(fmt.Sprintf("%s (%s)", m.Running, status))
	}

	sidebar := m.renderSidebar()
	right := lipgloss.JoinVertical(lipgloss.Left, m.renderDiagram(), m.renderCode())
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, right)

	footer := styles.help.Render("tab: focus • ↑/↓: move • enter: run • space: pause • y: copy • q: quit")
	if m.Message != "" {
		footer = styles.message.Render(m.Message)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) paneStyle(p pane) lipgloss.Style {
	if m.Focus == p {
		return styles.focused
	}
	return styles.pane
}

func (m Model) renderSidebar() string {
	var cats strings.Builder
	cats.WriteString(styles.heading.Render("Categories"))
	for i, c := range m.Categories {
		cats.WriteByte('\n')
		cats.WriteString(renderItem(string(c), i == m.CatChoice))
	}

	var pats strings.Builder
	pats.WriteString(styles.heading.Render("Patterns"))
	for i, name := range m.patternNames() {
		pats.WriteByte('\n')
		pats.WriteString(renderItem(name, i == m.PatChoice))
	}

	w := sidebarWidth - 2
	return lipgloss.JoinVertical(lipgloss.Left,
		m.paneStyle(paneCategories).Width(w).Render(cats.String()),
		m.paneStyle(panePatterns).Width(w).Render(pats.String()),
	)
}

func renderItem(label string, selected bool) string {
	if selected {
		return styles.selected.Render("> " + label)
	}
	return styles.item.Render("  " + label)
}

func (m Model) renderDiagram() string {
	var content string
	switch {
	case m.host.Frame() != nil:
		content = canvas.TerminalImage(m.host.Frame(), m.diagramCols, m.diagramRows, diagramBackground)
	case m.host.Placeholder() != "":
		content = styles.muted.Render(m.host.Placeholder())
	case m.Running == "":
		content = styles.muted.Render("Pick a category and a pattern, then press enter.")
	}
	return styles.pane.
		Width(m.diagramCols).
		Height(m.diagramRows).
		Render(content)
}

func (m Model) renderCode() string {
	lines := strings.Split(m.code(), "\n")
	start := min(m.CodeScroll, len(lines))
	end := min(start+m.codeRows, len(lines))
	return m.paneStyle(paneCode).
		Width(m.diagramCols).
		Height(m.codeRows).
		Render(strings.Join(lines[start:end], "\n"))
}
