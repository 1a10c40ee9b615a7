package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rcliao/subnotes/internal/view"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (m Model) View() string {
	if !m.loaded {
		return "Loading..."
	}
	if m.help.ShowAll {
		return m.help.View(m.keys)
	}

	header := headerStyle.Render("subnotes")
	if m.view.Filtered() {
		header += faintStyle.Render(fmt.Sprintf("  search %q: %d match(es)", m.view.Query, len(m.rows)))
	}

	var footer []string
	if m.mode == composing || m.mode == searching {
		footer = append(footer, m.input.View())
	}
	if m.err != nil {
		footer = append(footer, errStyle.Render("error: "+m.err.Error()))
	}
	footer = append(footer, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.renderOutline(),
		"",
		strings.Join(footer, "\n"),
	)
}

func (m Model) renderOutline() string {
	if len(m.rows) == 0 {
		if m.view.Filtered() {
			return faintStyle.Render("no matches")
		}
		return faintStyle.Render("no notes yet, press n to add one")
	}

	start, end := 0, len(m.rows)
	if h := m.viewportHeight(); h > 0 {
		start = m.offset
		end = min(start+h, len(m.rows))
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		r := m.rows[i]
		if i > start {
			b.WriteByte('\n')
		}
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("▸ "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(strings.Repeat("  ", r.depth))
		b.WriteString(m.renderNode(r.node))
	}
	return b.String()
}

func (m Model) renderNode(n *view.Node) string {
	if m.mode == editing && n.Editing && n.ID == m.editingID {
		return m.input.View()
	}
	return view.Line(n)
}
