package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the note tree as JSON",
		Long:  "Export the whole note tree as JSON, in the format import reads back.",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	nb := mustOpen(cmd)
	defer nb.Close()

	printJSON(cmd.OutOrStdout(), nb.ctrl.Snapshot())
}
