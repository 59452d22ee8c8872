package cmd

import (
	"errors"

	"github.com/Johannes-Berggren/GitRecent/internal/ui"
)

const (
	exitFailure     = 1
	exitInterrupted = 130
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ui.ErrInterrupted):
		return exitInterrupted
	default:
		return exitFailure
	}
}
