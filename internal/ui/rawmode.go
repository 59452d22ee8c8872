package ui

import (
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// ErrNotTerminal is returned by MakeRaw when the input is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Terminal switches the controlling terminal between line mode and raw mode.
// Restore must be safe to call more than once and from another goroutine.
type Terminal interface {
	MakeRaw() error
	Restore() error
}

// TTY is the Terminal backed by a file descriptor.
type TTY struct {
	mu    sync.Mutex
	fd    uintptr
	state *term.State
}

func NewTTY(f *os.File) *TTY {
	return &TTY{fd: f.Fd()}
}

func (t *TTY) MakeRaw() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !isatty.IsTerminal(t.fd) && !isatty.IsCygwinTerminal(t.fd) {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return err
	}
	t.state = state
	return nil
}

func (t *TTY) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	return term.Restore(t.fd, state)
}

// TerminalSize reports the size of f, or zeros when f is not a terminal.
func TerminalSize(f *os.File) (width, height int) {
	w, h, err := term.GetSize(f.Fd())
	if err != nil {
		return 0, 0
	}
	return w, h
}

// RawModeGuard owns raw mode for the duration of a session. When raw mode
// cannot be entered the guard is inert and input stays line-buffered.
type RawModeGuard struct {
	mu   sync.Mutex
	term Terminal
	raw  bool
}

// AcquireRawMode puts t into raw mode. Failure is not an error for the
// caller; check Raw to learn which mode is active.
func AcquireRawMode(t Terminal) *RawModeGuard {
	g := &RawModeGuard{term: t}
	if err := t.MakeRaw(); err != nil {
		slog.Debug("raw mode unavailable, using line input", "error", err)
		return g
	}
	g.raw = true
	return g
}

// Raw reports whether the terminal is currently in raw mode.
func (g *RawModeGuard) Raw() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.raw
}

// Release restores the previous mode. Only the first call has an effect.
func (g *RawModeGuard) Release() error {
	if g == nil {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.raw {
		return nil
	}
	g.raw = false
	return g.term.Restore()
}
