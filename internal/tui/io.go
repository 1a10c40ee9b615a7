package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcliao/subnotes/internal/model"
)

// Controller calls run inside commands so that the sink can deliver the
// resulting view back into the update loop.

func gestureCmd(fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(context.Background()); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func startCmd(c Controller) tea.Cmd {
	return gestureCmd(c.Start)
}

func createCmd(c Controller, text string) tea.Cmd {
	return gestureCmd(func(ctx context.Context) error {
		_, err := c.Create(ctx, text)
		return err
	})
}

func deleteCmd(c Controller, id model.ID) tea.Cmd {
	return gestureCmd(func(ctx context.Context) error {
		return c.Delete(ctx, id)
	})
}

func toggleTargetCmd(c Controller, id model.ID) tea.Cmd {
	return gestureCmd(func(context.Context) error {
		return c.ToggleTarget(id)
	})
}

func beginEditCmd(c Controller, id model.ID) tea.Cmd {
	return gestureCmd(func(ctx context.Context) error {
		return c.BeginEdit(ctx, id)
	})
}

func cancelEditCmd(c Controller) tea.Cmd {
	return gestureCmd(func(context.Context) error {
		return c.CancelEdit()
	})
}

func confirmEditCmd(c Controller, id model.ID, text string) tea.Cmd {
	return gestureCmd(func(ctx context.Context) error {
		return c.ConfirmEdit(ctx, id, text)
	})
}

// flushSearchCmd runs whatever search is pending right away.
func flushSearchCmd(c Controller) tea.Cmd {
	return func() tea.Msg {
		c.FlushSearch()
		return nil
	}
}

// clearSearchCmd supersedes any pending search with a blank one, which
// shows the whole forest again.
func clearSearchCmd(c Controller) tea.Cmd {
	return func() tea.Msg {
		c.Search("")
		c.FlushSearch()
		return nil
	}
}
