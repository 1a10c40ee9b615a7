package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/subnotes/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a note",
		Long: `Add a note at the top level, or under --parent. Text can be a positional
arg or piped via stdin. Text shorter than 4 or longer than 20 characters is
ignored.`,
		Run: runAdd,
	}

	cmd.Flags().StringP("parent", "p", "", "Parent note id")

	RootCmd.AddCommand(cmd)
}

type addResult struct {
	OK      bool     `json:"ok"`
	Created bool     `json:"created"`
	ID      model.ID `json:"id,omitempty"`
	Parent  model.ID `json:"parent,omitempty"`
}

func runAdd(cmd *cobra.Command, args []string) {
	parent, _ := cmd.Flags().GetString("parent")

	// Get text: positional arg first, then check stdin
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			text = strings.TrimRight(string(b), "\r\n")
		}
	}
	if strings.TrimSpace(text) == "" {
		exitErr("add", fmt.Errorf("text is required (positional arg or stdin)"))
	}

	nb := mustOpen(cmd)
	defer nb.Close()

	id, err := nb.ctrl.CreateUnder(cmd.Context(), model.ID(strings.TrimSpace(parent)), text)
	if err != nil {
		exitErr("add", err)
	}
	if textFormat() {
		return
	}
	printJSON(cmd.OutOrStdout(), addResult{
		OK:      true,
		Created: !id.IsNone(),
		ID:      id,
		Parent:  model.ID(parent),
	})
}
