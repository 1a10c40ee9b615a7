package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/subnotes/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a note and everything under it",
		Args:  cobra.ExactArgs(1),
		Run:   runRm,
	}

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	id := model.ID(args[0])

	nb := mustOpen(cmd)
	defer nb.Close()

	existed := nb.ctrl.Find(id) != nil
	if err := nb.ctrl.Delete(cmd.Context(), id); err != nil {
		exitErr("rm", err)
	}
	if textFormat() {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%q,"removed":%t}`+"\n", id, existed)
}
