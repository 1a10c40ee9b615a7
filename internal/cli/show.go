package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rcliao/subnotes/internal/model"
	"github.com/rcliao/subnotes/internal/view"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show the note tree, or one note with its subtree",
		Args:  cobra.MaximumNArgs(1),
		Run:   runShow,
	}

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	nb := mustOpen(cmd)
	defer nb.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		if textFormat() {
			if err := nb.ctrl.Start(cmd.Context()); err != nil {
				exitErr("show", err)
			}
			return
		}
		printJSON(out, nb.ctrl.Snapshot())
		return
	}

	id := model.ID(args[0])
	note := nb.ctrl.Find(id)
	if note == nil {
		exitErr("show", fmt.Errorf("note %s not found", id))
	}
	if textFormat() {
		io.WriteString(out, view.Render(view.Build(model.Forest{note}, nb.ctrl.State())))
		return
	}
	printJSON(out, note)
}
