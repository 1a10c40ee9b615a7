// Package cli implements the subnotes CLI commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rcliao/subnotes/internal/config"
	"github.com/rcliao/subnotes/internal/controller"
	"github.com/rcliao/subnotes/internal/store"
	"github.com/rcliao/subnotes/internal/view"
)

const (
	formatJSON = "json"
	formatText = "text"
)

var (
	cfgFile    string
	formatFlag string
	cfg        config.Config
	logger     *logrus.Logger
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "subnotes",
	Short: "A tree of notes in your terminal",
	Long: `Nest notes under notes to any depth, edit them in place, delete whole
subtrees and find notes by exact text. Every change is saved as a full
snapshot in a local SQLite (or bbolt) file.`,
}

func init() {
	RootCmd.PersistentPreRunE = initConfig
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default: ~/.subnotes/config.yaml)")
	flags.StringP("db", "d", "", "Database path (default: $SUBNOTES_DB or ~/.subnotes/notes.db)")
	flags.StringP("backend", "b", "", "Storage backend: sqlite or bolt (default: sqlite)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (default: warn)")
	flags.StringVarP(&formatFlag, "format", "f", formatJSON, "Output format: json or text")
}

func initConfig(cmd *cobra.Command, args []string) error {
	v, err := config.NewViper(cfgFile)
	if err != nil {
		return err
	}
	flags := RootCmd.PersistentFlags()
	for key, flag := range map[string]string{
		config.KeyDB:       "db",
		config.KeyBackend:  "backend",
		config.KeyLogLevel: "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return applyConfig(v, cmd.ErrOrStderr())
}

func applyConfig(v *viper.Viper, logOut io.Writer) error {
	cfg = config.Load(v)
	logger = config.NewLogger(logOut, cfg.LogLevel)
	if formatFlag != formatJSON && formatFlag != formatText {
		return fmt.Errorf("unknown format %q (valid: json, text)", formatFlag)
	}
	logger.WithFields(logrus.Fields{
		"db":      cfg.DB,
		"backend": cfg.Backend,
	}).Debug("config resolved")
	return nil
}

// notebook bundles an open store with the controller driving it.
type notebook struct {
	kv    store.KV
	snaps *store.Snapshots
	ctrl  *controller.Controller
}

// openNotebook opens the configured store. In text format the controller
// renders into out after every change; in json format it renders nothing
// and commands print their own result.
func openNotebook(ctx context.Context, out io.Writer) (*notebook, error) {
	if dir := filepath.Dir(cfg.DB); cfg.Backend != store.BackendMemory {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	kv, err := store.Open(cfg.Backend, cfg.DB)
	if err != nil {
		return nil, err
	}

	var sink view.Sink = view.NopSink{}
	if formatFlag == formatText {
		sink = view.TextSink{W: out}
	}

	snaps := store.NewSnapshots(kv, logger)
	ctrl, err := controller.New(ctx, snaps, sink, controller.Options{
		SearchDelay: cfg.SearchDebounce,
		Logger:      logger,
	})
	if err != nil {
		kv.Close()
		return nil, err
	}
	return &notebook{kv: kv, snaps: snaps, ctrl: ctrl}, nil
}

func (n *notebook) Close() error {
	n.ctrl.Close()
	return n.kv.Close()
}

func mustOpen(cmd *cobra.Command) *notebook {
	nb, err := openNotebook(cmd.Context(), cmd.OutOrStdout())
	if err != nil {
		exitErr("open store", err)
	}
	return nb
}

func textFormat() bool { return formatFlag == formatText }

func printJSON(w io.Writer, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
