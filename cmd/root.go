package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var flagDebug bool

// logger receives engine and index diagnostics. It discards everything
// unless --debug is set.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

var rootCmd = &cobra.Command{
	Use:          "opsearch",
	Short:        "Fuzzy search over a catalog of file operations",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `opsearch finds the file operation you mean from a loose description:
"combine files" finds MERGE PDF, "jpg2png" finds JPG TO PNG.

The catalog is the built-in one unless ~/.opsearch/opsearch.yaml or
OPSEARCH_CATALOG points at a catalog file or directory.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log engine diagnostics to stderr")
}

// Execute is called by main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
