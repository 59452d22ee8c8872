package ui

import (
	"bufio"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/key"
)

// KeyEvent is a decoded keypress.
type KeyEvent int

const (
	KeyUnrecognized KeyEvent = iota
	KeyUp
	KeyDown
	KeyConfirm
	KeyCancel
)

func (k KeyEvent) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyConfirm:
		return "confirm"
	case KeyCancel:
		return "cancel"
	default:
		return "unrecognized"
	}
}

// KeyMap binds key names to menu actions.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap is vi keys, WASD and arrows.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k", "w"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "s"),
		key.WithHelp("↓/j", "down"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("enter", "checkout"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("q", "Q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "cancel"),
	),
}

func (m KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{m.Up, m.Down, m.Confirm, m.Cancel}
}

func (m KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}

func (m KeyMap) event(k keyName) KeyEvent {
	switch {
	case key.Matches(k, m.Up):
		return KeyUp
	case key.Matches(k, m.Down):
		return KeyDown
	case key.Matches(k, m.Confirm):
		return KeyConfirm
	case key.Matches(k, m.Cancel):
		return KeyCancel
	}
	return KeyUnrecognized
}

type keyName string

func (k keyName) String() string { return string(k) }

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// KeyReader decodes keypresses from a byte stream.
type KeyReader struct {
	r      *bufio.Reader
	keymap KeyMap

	// Line mode is the fallback when raw mode is unavailable: every key
	// arrives followed by a newline that the terminal has already echoed.
	lineMode bool
	midLine  bool
	echoed   int
}

func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r), keymap: DefaultKeyMap}
}

// SetLineMode switches newline handling for line-buffered input.
func (k *KeyReader) SetLineMode(on bool) {
	k.lineMode = on
	k.midLine = false
}

// Echoed returns how many input lines were started since the last call.
// It is always zero outside line mode.
func (k *KeyReader) Echoed() int {
	n := k.echoed
	k.echoed = 0
	return n
}

// Next blocks for one key. End of input reads as KeyCancel.
func (k *KeyReader) Next() (KeyEvent, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return KeyCancel, nil
		}
		return KeyCancel, err
	}

	if k.lineMode {
		if !k.midLine {
			k.echoed++
		}
		if b == '\n' || b == '\r' {
			wasMidLine := k.midLine
			k.midLine = false
			if wasMidLine {
				return KeyUnrecognized, nil
			}
			return KeyConfirm, nil
		}
		k.midLine = true
	}

	if b == keyEscape {
		return k.escape(), nil
	}
	return k.keymap.event(byteName(b)), nil
}

// escape resolves a lead ESC byte. Only bytes that arrived together with it
// are examined so a lone ESC never blocks; lookahead is consumed only when it
// completes an arrow code.
func (k *KeyReader) escape() KeyEvent {
	if k.r.Buffered() < 2 {
		return KeyCancel
	}
	seq, err := k.r.Peek(2)
	if err != nil || seq[0] != '[' {
		return KeyCancel
	}

	var name keyName
	switch seq[1] {
	case 'A':
		name = "up"
	case 'B':
		name = "down"
	default:
		return KeyCancel
	}
	k.r.Discard(2)
	return k.keymap.event(name)
}

func byteName(b byte) keyName {
	switch {
	case b == '\r' || b == '\n':
		return "enter"
	case b == ' ':
		return "space"
	case b == keyCtrlC:
		return "ctrl+c"
	case b == keyEscape:
		return "esc"
	case b > ' ' && b < 0x7f:
		return keyName(string(rune(b)))
	}
	return ""
}
