package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/smartpager/internal/app"
)

var errNotTerminal = errors.New("stdout is not a terminal")

// stdoutIsTerminal is replaced in tests.
var stdoutIsTerminal = func() bool { return isTerminal(os.Stdout) }

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(app.Run).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "smartpager: %v\n", err)
		return 1
	}
	return 0
}

// newRootCmd builds the command line. runApp is swapped out in tests.
func newRootCmd(runApp func(context.Context, app.Options) error) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:           "smartpager <file>",
		Short:         "Page through log files with inline JSON expansion",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdoutIsTerminal() {
				return errNotTerminal
			}
			opts.Path = args[0]
			return runApp(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default ~/.config/smartpager/config.toml)")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "color theme (Dracula, Nightfox, Slate)")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "write debug log to this file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log at debug level")
	cmd.Flags().BoolVar(&opts.NoMouse, "no-mouse", false, "disable mouse support")

	return cmd
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
