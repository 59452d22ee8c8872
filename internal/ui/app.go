package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Johannes-Berggren/GitRecent/internal/config"
	"github.com/Johannes-Berggren/GitRecent/internal/models"
)

// menuChrome is the number of menu lines that are not branches.
const menuChrome = 4

// Repository is the git side of the picker.
type Repository interface {
	RecentBranches(ctx context.Context, max int) (models.BranchList, error)
	CurrentBranch(ctx context.Context) (string, error)
	ChangeCount(ctx context.Context) (int, error)
	Checkout(ctx context.Context, name string) error
}

type Options struct {
	MaxBranches   int
	Visible       int
	ShowCurrent   bool
	StrictCurrent bool

	// Terminal size; zero when unknown.
	Width  int
	Height int
}

// Outcome reports how a run ended.
type Outcome struct {
	State  State
	Branch string

	// Branches is the list after a successful checkout moved Branch to the front.
	Branches models.BranchList
}

// App loads branches, runs the picker and checks out the choice.
type App struct {
	repo Repository
	term Terminal
	in   io.Reader
	out  io.Writer
	opts Options
}

func NewApp(repo Repository, term Terminal, in io.Reader, out io.Writer, opts Options) *App {
	return &App{repo: repo, term: term, in: in, out: out, opts: opts}
}

func (a *App) Run(ctx context.Context) (Outcome, error) {
	outcome := Outcome{State: StateLoading}

	branches, err := a.repo.RecentBranches(ctx, a.opts.MaxBranches)
	if err != nil {
		return outcome, err
	}
	outcome.Branches = branches
	if len(branches) == 0 {
		outcome.State = StateEmpty
		fmt.Fprintln(a.out, "No branches found")
		return outcome, nil
	}

	current, err := a.currentBranch(ctx)
	if err != nil {
		return outcome, err
	}

	changes, err := a.repo.ChangeCount(ctx)
	if err != nil {
		slog.Debug("working tree status unavailable", "error", err)
		changes = -1
	}

	outcome.State = StateBrowsing
	sel := &Selector{
		branches: branches,
		current:  current,
		changes:  changes,
		visible:  a.visible(),
		term:     a.term,
		keys:     NewKeyReader(a.in),
		render:   NewMenuRenderer(a.out, a.opts.Width),
	}
	state, err := sel.Run()
	outcome.State = state
	if err != nil {
		return outcome, err
	}
	if state != StateConfirmed {
		return outcome, nil
	}

	outcome.Branch = sel.Selected()
	fmt.Fprintf(a.out, "Checking out branch: %s\n", outcome.Branch)
	if err := a.repo.Checkout(ctx, outcome.Branch); err != nil {
		return outcome, err
	}
	outcome.Branches = branches.Promote(outcome.Branch)
	return outcome, nil
}

func (a *App) currentBranch(ctx context.Context) (string, error) {
	if !a.opts.ShowCurrent {
		return "", nil
	}
	current, err := a.repo.CurrentBranch(ctx)
	if err != nil {
		if a.opts.StrictCurrent {
			return "", err
		}
		slog.Debug("current branch unavailable", "error", err)
		return "", nil
	}
	return current, nil
}

// visible fits the configured row count into the terminal height.
func (a *App) visible() int {
	v := a.opts.Visible
	if v < 1 {
		v = config.DefaultVisible
	}
	if a.opts.Height > 0 {
		v = min(v, a.opts.Height-menuChrome-1)
	}
	return max(v, 1)
}
