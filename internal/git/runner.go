package git

import (
	"bytes"
	"context"
	"io"
	"os/exec"
)

// Runner runs external commands. Tests substitute a fake so no git process is spawned.
type Runner interface {
	// Output runs the command and returns its standard output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// Stream runs the command with its output connected to the given writers.
	Stream(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error
}

// ExecRunner runs commands with os/exec in the given directory.
type ExecRunner struct {
	Dir string
}

func (r ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return output, &runError{err: err, stderr: bytes.TrimSpace(stderr.Bytes())}
	}
	return output, nil
}

func (r ExecRunner) Stream(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// runError keeps what the command printed on stderr next to its exit status.
type runError struct {
	err    error
	stderr []byte
}

func (e *runError) Error() string {
	if len(e.stderr) == 0 {
		return e.err.Error()
	}
	return e.err.Error() + ": " + string(e.stderr)
}

func (e *runError) Unwrap() error { return e.err }
