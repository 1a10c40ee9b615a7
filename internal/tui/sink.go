package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcliao/subnotes/internal/view"
)

// viewMsg carries a freshly rendered view into the update loop.
type viewMsg struct{ view view.View }

type errMsg struct{ err error }

// Sink forwards views to a running program. Views replaced before the
// program is attached are dropped; Init re-renders once it runs.
type Sink struct {
	mu sync.Mutex
	p  *tea.Program
}

// Attach sets the program that receives views.
func (s *Sink) Attach(p *tea.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p = p
}

func (s *Sink) Replace(v view.View) error {
	s.mu.Lock()
	p := s.p
	s.mu.Unlock()
	if p != nil {
		p.Send(viewMsg{view: v})
	}
	return nil
}
