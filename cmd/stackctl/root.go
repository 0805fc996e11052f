package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "stackctl",
	Short: "Interactive string stack over stdin",
	Long: `stackctl reads commands from standard input and maintains a stack of
strings. Supported commands:

  push <text>   push a line onto the stack, prints "ok"
  pop           remove and print the top entry, "error" when empty
  back          print the top entry without removing it, "error" when empty
  size          print the number of entries
  clear         remove all entries, prints "ok"
  exit          print "bye" and quit`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd.InOrStdin(), cmd.OutOrStdout(), newLogger())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging to stderr")
}

// newLogger returns a text logger to stderr. Without --verbose only warnings
// and errors are emitted.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
