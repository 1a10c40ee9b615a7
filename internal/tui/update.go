package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcliao/subnotes/internal/model"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-20, 10)
		m.adjustScroll()
		return m, nil

	case viewMsg:
		m.setView(msg.view)
		m.adjustScroll()
		return m, m.syncEditMode()

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && (m.mode == browsing || msg.Type == tea.KeyCtrlC) {
			return m, tea.Quit
		}
		switch m.mode {
		case composing:
			return m.updateComposing(msg)
		case editing:
			return m.updateEditing(msg)
		case searching:
			return m.updateSearching(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

// syncEditMode opens the inline editor when the view gains an editing note
// and closes it when the note leaves edit mode elsewhere.
func (m *Model) syncEditMode() tea.Cmd {
	n := m.view.Editing()
	switch {
	case n != nil && (m.mode != editing || m.editingID != n.ID):
		m.mode = editing
		m.editingID = n.ID
		m.input.Prompt = ""
		m.input.Placeholder = ""
		m.input.SetValue(n.Text)
		m.input.CursorEnd()
		for i, r := range m.rows {
			if r.node.ID == n.ID {
				m.cursor = i
				break
			}
		}
		m.adjustScroll()
		return m.input.Focus()
	case n == nil && m.mode == editing:
		m.leaveInput()
	}
	return nil
}

func (m *Model) leaveInput() {
	m.mode = browsing
	m.editingID = model.None
	m.input.Blur()
	m.input.Reset()
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	r, ok := m.selected()

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.adjustScroll()
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		m.adjustScroll()
	case key.Matches(msg, m.keys.New):
		m.mode = composing
		m.input.Reset()
		m.input.Prompt = "new note: "
		m.input.Placeholder = "4 to 20 characters"
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Search):
		m.mode = searching
		m.input.Prompt = "search: "
		m.input.Placeholder = "exact text"
		m.input.SetValue(m.view.Query)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Cancel):
		if m.view.Filtered() {
			return m, clearSearchCmd(m.ctrl)
		}
	case !ok:
		// Nothing below applies to an empty outline.
	case key.Matches(msg, m.keys.Target):
		return m, toggleTargetCmd(m.ctrl, r.node.ID)
	case key.Matches(msg, m.keys.Delete):
		return m, deleteCmd(m.ctrl, r.node.ID)
	case key.Matches(msg, m.keys.Edit):
		return m, beginEditCmd(m.ctrl, r.node.ID)
	}
	return m, nil
}

func (m Model) updateComposing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		text := m.input.Value()
		m.leaveInput()
		return m, createCmd(m.ctrl, text)
	case key.Matches(msg, m.keys.Cancel):
		m.leaveInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id, text := m.editingID, m.input.Value()
		m.leaveInput()
		return m, confirmEditCmd(m.ctrl, id, text)
	case key.Matches(msg, m.keys.Cancel):
		m.leaveInput()
		return m, cancelEditCmd(m.ctrl)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.leaveInput()
		return m, flushSearchCmd(m.ctrl)
	case key.Matches(msg, m.keys.Cancel):
		m.leaveInput()
		return m, clearSearchCmd(m.ctrl)
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != before {
		// Search only schedules the debounced run.
		m.ctrl.Search(q)
	}
	return m, cmd
}
