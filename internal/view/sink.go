package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sink displays views. Replace discards whatever was shown before.
type Sink interface {
	Replace(v View) error
}

// NopSink discards every view.
type NopSink struct{}

func (NopSink) Replace(View) error { return nil }

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	editStyle     = lipgloss.NewStyle().Underline(true)
	idStyle       = lipgloss.NewStyle().Faint(true)
	headerStyle   = lipgloss.NewStyle().Bold(true)
)

// TextSink writes an indented outline to W.
type TextSink struct {
	W io.Writer
}

func (s TextSink) Replace(v View) error {
	_, err := io.WriteString(s.W, Render(v))
	return err
}

// Render formats v as an indented outline, one note per line.
func Render(v View) string {
	var b strings.Builder
	if v.Filtered() {
		fmt.Fprintf(&b, "%s\n", headerStyle.Render(fmt.Sprintf("search %q: %d match(es)", v.Query, len(v.Nodes))))
	}
	if len(v.Nodes) == 0 && !v.Filtered() {
		b.WriteString("(no notes)\n")
		return b.String()
	}
	v.Walk(func(n *Node, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(Line(n))
		b.WriteByte('\n')
		return true
	})
	return b.String()
}

// Line formats a single node without indentation.
func Line(n *Node) string {
	marker := "- "
	if n.Selected {
		marker = "> "
	}
	label := n.Text
	switch {
	case n.Editing:
		label = editStyle.Render("[" + n.Text + "]")
	case n.Selected:
		label = selectedStyle.Render(n.Text)
	}
	return marker + label + " " + idStyle.Render("#"+n.ID.String())
}
