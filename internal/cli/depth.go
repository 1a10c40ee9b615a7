package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/subnotes/internal/pagedepth"
)

func init() {
	cmd := &cobra.Command{
		Use:   "depth [file]",
		Short: "Report the deepest list nesting in an HTML page",
		Long:  "Read an HTML page (file or stdin) and report how deeply <ul>/<ol> lists nest inside <body>.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runDepth,
	}

	RootCmd.AddCommand(cmd)
}

func runDepth(cmd *cobra.Command, args []string) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			exitErr("open file", err)
		}
		defer f.Close()
		r = f
	}

	depth, err := pagedepth.MaxDepthReader(r)
	if err != nil {
		exitErr("depth", err)
	}
	if textFormat() {
		fmt.Fprintln(cmd.OutOrStdout(), depth)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), `{"depth":%d}`+"\n", depth)
}
