// Package tui is an interactive terminal front end for the note tree. It is
// a view sink: the controller pushes every rendered view into the running
// program, and key gestures are fed back to the controller from commands.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcliao/subnotes/internal/model"
	"github.com/rcliao/subnotes/internal/view"
)

// Controller is the set of gestures the TUI drives. Except for Search,
// which only schedules work, every method may render into the sink and so
// must never be called from Update directly.
type Controller interface {
	Start(ctx context.Context) error
	Create(ctx context.Context, text string) (model.ID, error)
	Delete(ctx context.Context, id model.ID) error
	ToggleTarget(id model.ID) error
	BeginEdit(ctx context.Context, id model.ID) error
	CancelEdit() error
	ConfirmEdit(ctx context.Context, id model.ID, text string) error
	Search(query string)
	FlushSearch()
}

type inputMode int

const (
	browsing inputMode = iota
	composing
	editing
	searching
)

// row is one visible line of the outline.
type row struct {
	node  *view.Node
	depth int
}

// Model is the bubbletea model for the note tree.
type Model struct {
	ctrl      Controller
	view      view.View
	rows      []row
	cursor    int
	offset    int
	mode      inputMode
	editingID model.ID
	input     textinput.Model
	keys      KeyMap
	help      help.Model
	width     int
	height    int
	loaded    bool
	err       error
}

// New returns a model driving ctrl.
func New(ctrl Controller) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	return Model{
		ctrl:  ctrl,
		input: ti,
		keys:  keys,
		help:  help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return startCmd(m.ctrl)
}

// setView replaces the outline, keeping the cursor on the same note when it
// is still visible.
func (m *Model) setView(v view.View) {
	var current model.ID
	if r, ok := m.selected(); ok {
		current = r.node.ID
	}

	m.view = v
	m.loaded = true
	m.rows = nil
	v.Walk(func(n *view.Node, depth int) bool {
		m.rows = append(m.rows, row{node: n, depth: depth})
		return true
	})

	for i, r := range m.rows {
		if r.node.ID == current {
			m.cursor = i
			break
		}
	}
	m.clampCursor()
}

func (m Model) selected() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// viewportHeight is the number of outline rows that fit on screen; 0 means
// no limit.
func (m Model) viewportHeight() int {
	if m.height == 0 {
		return 0
	}
	h := m.height - 6
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) adjustScroll() {
	h := m.viewportHeight()
	if h == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}
