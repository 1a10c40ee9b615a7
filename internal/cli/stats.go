package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	nb := mustOpen(cmd)
	defer nb.Close()

	stats, err := nb.snaps.Stats(cmd.Context(), cfg.Backend, cfg.DB, nb.ctrl.NextID())
	if err != nil {
		exitErr("stats", err)
	}

	if !textFormat() {
		printJSON(cmd.OutOrStdout(), stats)
		return
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "db\t%s (%s)\n", stats.DBPath, stats.Backend)
	fmt.Fprintf(w, "size\t%d bytes\n", stats.DBSizeBytes)
	fmt.Fprintf(w, "notes\t%d (%d top-level)\n", stats.TotalNotes, stats.TopLevel)
	fmt.Fprintf(w, "depth\t%d\n", stats.MaxDepth)
	fmt.Fprintf(w, "next id\t%s\n", stats.NextID)
	if stats.Revision != "" {
		fmt.Fprintf(w, "revision\t%s\n", stats.Revision)
	}
	w.Flush()
}
