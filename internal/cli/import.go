package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/subnotes/internal/model"
	"github.com/rcliao/subnotes/internal/tree"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the note tree from JSON",
		Long: `Replace the whole note tree from JSON (file or stdin). Expects the format
produced by export; numeric ids are accepted. New notes get ids above every
imported numeric id.`,
		Args: cobra.MaximumNArgs(1),
		Run:  runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			exitErr("open file", err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		exitErr("read input", err)
	}

	var forest model.Forest
	if err := json.Unmarshal(data, &forest); err != nil {
		exitErr("parse json", err)
	}

	nb := mustOpen(cmd)
	defer nb.Close()

	if err := nb.ctrl.Import(cmd.Context(), forest); err != nil {
		exitErr("import", err)
	}
	if textFormat() {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", tree.Count(forest))
}
