package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Find notes by exact text",
		Long:  "Find every note whose text equals the query exactly (case-sensitive).",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	query := strings.Join(args, " ")

	nb := mustOpen(cmd)
	defer nb.Close()

	if textFormat() {
		if err := nb.ctrl.SearchNow(cmd.Context(), query); err != nil {
			exitErr("search", err)
		}
		return
	}
	printJSON(cmd.OutOrStdout(), nb.ctrl.Hits(query))
}
