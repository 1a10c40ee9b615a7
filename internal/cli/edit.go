package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/subnotes/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "edit [id] [text]",
		Short: "Replace the text of a note",
		Long:  "Replace the text of a note. Unlike add, the new text is not length-checked.",
		Args:  cobra.MinimumNArgs(2),
		Run:   runEdit,
	}

	RootCmd.AddCommand(cmd)
}

func runEdit(cmd *cobra.Command, args []string) {
	id := model.ID(args[0])
	text := strings.Join(args[1:], " ")

	nb := mustOpen(cmd)
	defer nb.Close()

	found := nb.ctrl.Find(id) != nil
	if err := nb.ctrl.ConfirmEdit(cmd.Context(), id, text); err != nil {
		exitErr("edit", err)
	}
	if textFormat() {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%q,"edited":%t}`+"\n", id, found)
}
