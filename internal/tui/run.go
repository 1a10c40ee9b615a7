package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcliao/subnotes/internal/controller"
	"github.com/rcliao/subnotes/internal/view"
)

// Run attaches a program to ctrl as its sink and blocks until the user
// quits. The previous sink is replaced by a NopSink on return.
func Run(ctx context.Context, ctrl *controller.Controller, opts ...tea.ProgramOption) error {
	sink := &Sink{}
	ctrl.SetSink(sink)
	defer ctrl.SetSink(view.NopSink{})

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(ctrl), opts...)
	sink.Attach(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
