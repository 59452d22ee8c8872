package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/cancelreader"
	"github.com/spf13/cobra"

	"github.com/Johannes-Berggren/GitRecent/internal/config"
	"github.com/Johannes-Berggren/GitRecent/internal/git"
	"github.com/Johannes-Berggren/GitRecent/internal/ui"
)

// Version is set at build time.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "recent",
	Short: "Check out a recently used git branch",
	Long: `recent lists local branches by last commit and checks out the one you pick.

Keys: ↑/k/w up, ↓/j/s down, enter/space checkout, q/esc cancel.

Environment:
  GITRECENT_MAX_BRANCHES    branches to load (default 200)
  GITRECENT_VISIBLE         menu rows (default 5)
  GITRECENT_SHOW_CURRENT    mark the checked out branch (default true)
  GITRECENT_STRICT_CURRENT  fail when the current branch cannot be read
  GITRECENT_GIT             git binary (default git)
  GITRECENT_DEBUG           log level`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		setupLogging(cmd.ErrOrStderr(), cfg.LogLevel)
		slog.Debug("config", "values", cfg.Values())
	},
	RunE: runPicker,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print recent branches, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var cfg config.Config

func init() {
	rootCmd.AddCommand(listCmd)
}

// Execute runs the root command and exits with the matching status on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := exitCode(err)
		if code != exitInterrupted {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(code)
	}
}

func setupLogging(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func newClient(cmd *cobra.Command) *git.Client {
	return git.NewClient(git.ExecRunner{}, cfg.GitPath, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func runPicker(cmd *cobra.Command, args []string) error {
	stdin, interrupt := openInput()
	defer stdin.Close()

	tty := ui.NewTTY(os.Stdin)
	watcher := ui.WatchSignals(tty, os.Stdout, interrupt)
	defer watcher.Stop()

	width, height := ui.TerminalSize(os.Stdout)
	app := ui.NewApp(newClient(cmd), tty, stdin, os.Stdout, ui.Options{
		MaxBranches:   cfg.MaxBranches,
		Visible:       cfg.Visible,
		ShowCurrent:   cfg.ShowCurrent,
		StrictCurrent: cfg.StrictCurrent,
		Width:         width,
		Height:        height,
	})

	outcome, err := app.Run(cmd.Context())
	slog.Debug("picker finished", "state", outcome.State, "branch", outcome.Branch, "signal", watcher.Caught())
	return err
}

// openInput wraps stdin so a signal can unblock a pending read. Inputs the
// platform cannot poll, such as regular files, fall back to plain stdin and
// cannot be interrupted.
func openInput() (io.ReadCloser, func() bool) {
	r, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		slog.Debug("stdin is not cancellable", "error", err)
		return io.NopCloser(os.Stdin), func() bool { return false }
	}
	return r, r.Cancel
}

func runList(cmd *cobra.Command, args []string) error {
	client := newClient(cmd)
	ctx := cmd.Context()

	branches, err := client.RecentBranches(ctx, cfg.MaxBranches)
	if err != nil {
		return err
	}

	var current string
	if cfg.ShowCurrent {
		current, err = client.CurrentBranch(ctx)
		if err != nil {
			if cfg.StrictCurrent {
				return err
			}
			slog.Debug("current branch unavailable", "error", err)
		}
	}

	out := cmd.OutOrStdout()
	for _, b := range branches.Branches(current) {
		mark := " "
		if b.IsCurrent {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %s\n", mark, b.Name)
	}
	return nil
}
