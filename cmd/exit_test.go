package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Johannes-Berggren/GitRecent/internal/git"
	"github.com/Johannes-Berggren/GitRecent/internal/ui"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"startup", &git.StepError{Step: "git branch", Err: errors.New("exit status 128")}, 1},
		{"checkout", &git.StepError{Step: "git checkout", Err: errors.New("exit status 1")}, 1},
		{"render", fmt.Errorf("%w: broken pipe", ui.ErrRender), 1},
		{"interrupted", ui.ErrInterrupted, 130},
		{"wrapped interrupt", fmt.Errorf("browse: %w", ui.ErrInterrupted), 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestRootRejectsArgs(t *testing.T) {
	require.Error(t, rootCmd.Args(rootCmd, []string{"main"}))
	require.NoError(t, rootCmd.Args(rootCmd, nil))
}

func TestListRegistered(t *testing.T) {
	sub, _, err := rootCmd.Find([]string{"list"})
	require.NoError(t, err)
	require.Equal(t, "list", sub.Name())
}
