package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rcliao/subnotes/internal/tui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse and edit the note tree interactively",
		Long: `Launch the interactive note tree. n adds a note (under the note chosen
with a, if any), e edits, d deletes, / searches by exact text, q quits.`,
		Run: runTUI,
	}

	RootCmd.AddCommand(cmd)
}

func runTUI(cmd *cobra.Command, args []string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		exitErr("tui", fmt.Errorf("TUI mode requires an interactive terminal"))
	}

	// The TUI owns the screen, so the notebook never renders text.
	formatFlag = formatJSON
	nb := mustOpen(cmd)
	defer nb.Close()

	if err := tui.Run(cmd.Context(), nb.ctrl, tea.WithAltScreen()); err != nil {
		exitErr("tui", err)
	}
}
