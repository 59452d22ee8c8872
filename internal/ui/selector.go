package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/muesli/cancelreader"

	"github.com/Johannes-Berggren/GitRecent/internal/models"
)

// ErrInterrupted is returned when a signal cut the session short.
var ErrInterrupted = errors.New("interrupted")

// State is where the picker ended up.
type State int

const (
	StateLoading State = iota
	StateBrowsing
	StateConfirmed
	StateCancelled
	StateEmpty
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateBrowsing:
		return "browsing"
	case StateConfirmed:
		return "confirmed"
	case StateCancelled:
		return "cancelled"
	case StateEmpty:
		return "empty"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Selector is the browsing loop: it owns the cursor and turns keys into
// cursor moves and redraws until the user confirms or cancels.
type Selector struct {
	branches models.BranchList
	current  string
	changes  int
	visible  int
	cursor   int

	term   Terminal
	keys   *KeyReader
	render *MenuRenderer
}

// Cursor is the index of the highlighted branch.
func (s *Selector) Cursor() int {
	return s.cursor
}

// Selected is the highlighted branch name.
func (s *Selector) Selected() string {
	return s.branches[s.cursor]
}

// Run holds raw mode for the whole loop and releases it on every return path.
// The list must not be empty.
func (s *Selector) Run() (state State, err error) {
	guard := AcquireRawMode(s.term)
	defer func() {
		if rerr := guard.Release(); rerr != nil {
			slog.Debug("restore terminal", "error", rerr)
		}
	}()
	s.keys.SetLineMode(!guard.Raw())

	if err := s.render.HideCursor(); err != nil {
		return StateBrowsing, err
	}
	defer func() {
		// The menu is already gone when drawing failed; only the cursor matters.
		if err == nil {
			err = s.render.Clear()
		}
		if serr := s.render.ShowCursor(); err == nil {
			err = serr
		}
	}()

	dirty := true
	for {
		if dirty {
			frame := Frame{
				Branches: s.branches,
				Window:   ComputeWindow(s.cursor, len(s.branches), s.visible),
				Current:  s.current,
				Changes:  s.changes,
			}
			if err := s.render.Draw(frame, s.keys.Echoed()); err != nil {
				return StateBrowsing, err
			}
		}

		ev, err := s.keys.Next()
		if err != nil {
			if errors.Is(err, cancelreader.ErrCanceled) {
				return StateCancelled, ErrInterrupted
			}
			return StateBrowsing, fmt.Errorf("read input: %w", err)
		}
		slog.Debug("key", "event", ev, "cursor", s.cursor)

		dirty = true
		switch ev {
		case KeyUp:
			s.cursor = max(0, s.cursor-1)
		case KeyDown:
			s.cursor = min(len(s.branches)-1, s.cursor+1)
		case KeyConfirm:
			return StateConfirmed, nil
		case KeyCancel:
			return StateCancelled, nil
		default:
			dirty = false
		}
	}
}
