package ui

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/charmbracelet/x/ansi"
)

// exit is replaced in tests.
var exit = os.Exit

// SignalWatcher restores the terminal when the process is asked to stop.
type SignalWatcher struct {
	ch   chan os.Signal
	done chan struct{}
	once sync.Once

	mu     sync.Mutex
	caught os.Signal
}

// WatchSignals listens for SIGINT, SIGTERM and SIGHUP. On delivery the
// terminal is restored, the cursor shown on out, and interrupt is called to
// unblock the pending read. If interrupt reports false the read cannot be
// unblocked and the process exits with status 130.
func WatchSignals(t Terminal, out io.Writer, interrupt func() bool) *SignalWatcher {
	w := newSignalWatcher(t, out, interrupt)
	signal.Notify(w.ch, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	return w
}

func newSignalWatcher(t Terminal, out io.Writer, interrupt func() bool) *SignalWatcher {
	w := &SignalWatcher{
		ch:   make(chan os.Signal, 1),
		done: make(chan struct{}),
	}

	go func() {
		select {
		case sig := <-w.ch:
			w.mu.Lock()
			w.caught = sig
			w.mu.Unlock()

			slog.Debug("signal received, restoring terminal", "signal", sig)
			if err := t.Restore(); err != nil {
				slog.Debug("restore terminal", "error", err)
			}
			io.WriteString(out, ansi.ShowCursor)
			if !interrupt() {
				exit(130)
			}
		case <-w.done:
		}
	}()

	return w
}

// Caught returns the signal that arrived, or nil.
func (w *SignalWatcher) Caught() os.Signal {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.caught
}

// Stop unsubscribes from signals.
func (w *SignalWatcher) Stop() {
	w.once.Do(func() {
		signal.Stop(w.ch)
		close(w.done)
	})
}
