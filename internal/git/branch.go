package git

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Johannes-Berggren/GitRecent/internal/models"
)

// StepError names the git step that failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Client runs git through a Runner.
type Client struct {
	runner Runner
	git    string
	stdout io.Writer
	stderr io.Writer
}

// NewClient returns a client that runs the git binary at path. Checkout
// output goes to stdout and stderr untouched.
func NewClient(runner Runner, path string, stdout, stderr io.Writer) *Client {
	if path == "" {
		path = "git"
	}
	return &Client{runner: runner, git: path, stdout: stdout, stderr: stderr}
}

// RecentBranches returns up to max local branches, most recently committed first.
func (c *Client) RecentBranches(ctx context.Context, max int) (models.BranchList, error) {
	output, err := c.runner.Output(ctx, c.git, "branch", "--sort=-committerdate")
	if err != nil {
		return nil, &StepError{Step: "git branch", Err: err}
	}
	return models.NewBranchList(parseBranches(output), max), nil
}

// parseBranches reads `git branch` output. Lines look like "* main" or
// "  feature"; worktree checkouts are marked with "+".
func parseBranches(output []byte) []string {
	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(output))

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimPrefix(line, "+")
		line = strings.TrimSpace(line)

		// "(HEAD detached at 1a2b3c4)" and "(no branch, rebasing x)"
		if line == "" || strings.HasPrefix(line, "(") {
			continue
		}
		names = append(names, line)
	}

	return names
}

// CurrentBranch returns the name of the checked out branch, or "" when HEAD is detached.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	output, err := c.runner.Output(ctx, c.git, "branch", "--show-current")
	if err != nil {
		return "", &StepError{Step: "git show-current", Err: err}
	}
	return strings.TrimSpace(string(output)), nil
}

// Checkout switches to the named branch.
func (c *Client) Checkout(ctx context.Context, name string) error {
	if err := c.runner.Stream(ctx, c.stdout, c.stderr, c.git, "checkout", name); err != nil {
		return &StepError{Step: "git checkout", Err: err}
	}
	return nil
}
