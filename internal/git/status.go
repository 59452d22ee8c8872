package git

import (
	"bufio"
	"bytes"
	"context"
)

// ChangeCount returns how many paths `git status --porcelain` reports.
func (c *Client) ChangeCount(ctx context.Context) (int, error) {
	output, err := c.runner.Output(ctx, c.git, "status", "--porcelain=v1")
	if err != nil {
		return 0, &StepError{Step: "git status", Err: err}
	}
	return countStatus(output), nil
}

// countStatus counts porcelain lines. Format: XY PATH
func countStatus(output []byte) int {
	n := 0
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		if len(scanner.Text()) >= 4 {
			n++
		}
	}
	return n
}
