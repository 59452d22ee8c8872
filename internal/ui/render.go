package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Johannes-Berggren/GitRecent/internal/models"
)

// ErrRender wraps failures to write to the terminal.
var ErrRender = errors.New("render failed")

const (
	selectedGlyph = "▸"
	currentMark   = "*"
)

// Frame is everything one draw of the menu needs.
type Frame struct {
	Branches models.BranchList
	Window   Window
	Current  string

	// Changes is the number of uncommitted paths, or -1 when unknown.
	Changes int
}

type styles struct {
	title    lipgloss.Style
	dim      lipgloss.Style
	marker   lipgloss.Style
	current  lipgloss.Style
	selected lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		dim:      r.NewStyle().Foreground(lipgloss.Color("241")),
		marker:   r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("7")),
		current:  r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		selected: r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("4")),
	}
}

// MenuRenderer paints the menu below a fixed anchor: the line the first draw
// started on. Every draw returns to the anchor and clears downward, so
// repeated draws overwrite each other instead of scrolling.
type MenuRenderer struct {
	out    io.Writer
	width  int
	styles styles
	help   help.Model
	keymap KeyMap

	// lines drawn by the last frame
	lines int
}

// NewMenuRenderer draws to out. Names are truncated to width columns; zero
// disables truncation.
func NewMenuRenderer(out io.Writer, width int) *MenuRenderer {
	st := newStyles(lipgloss.NewRenderer(out))

	h := help.New()
	h.ShortSeparator = " • "
	h.Styles = help.Styles{
		Ellipsis:       st.dim,
		ShortKey:       st.dim.Bold(true),
		ShortDesc:      st.dim,
		ShortSeparator: st.dim,
		FullKey:        st.dim.Bold(true),
		FullDesc:       st.dim,
		FullSeparator:  st.dim,
	}
	if width > 0 {
		h.Width = width
	}

	return &MenuRenderer{
		out:    out,
		width:  width,
		styles: st,
		help:   h,
		keymap: DefaultKeyMap,
	}
}

// Draw replaces the previous frame with f. extra counts lines that appeared
// below the previous frame since it was drawn, such as echoed input.
func (r *MenuRenderer) Draw(f Frame, extra int) error {
	var b strings.Builder
	r.rewind(&b, r.lines+extra)

	b.WriteString(r.title(f.Changes))
	b.WriteString("\r\n")
	b.WriteString(r.indicator("(less)", f.Window.HasLess()))
	b.WriteString("\r\n")

	for i := f.Window.Offset; i < f.Window.End(); i++ {
		b.WriteString(r.item(f.Branches[i], f.Branches[i] == f.Current, i == f.Window.Cursor))
		b.WriteString("\r\n")
	}

	b.WriteString(r.indicator("(more)", f.Window.HasMore()))
	b.WriteString("\r\n")
	b.WriteString("  " + r.help.ShortHelpView(r.keymap.ShortHelp()))
	b.WriteString("\r\n")

	if err := r.write(b.String()); err != nil {
		return err
	}
	r.lines = f.Window.Len + 4
	return nil
}

// Clear erases the last frame and leaves the cursor at the anchor.
func (r *MenuRenderer) Clear() error {
	if r.lines == 0 {
		return nil
	}
	var b strings.Builder
	r.rewind(&b, r.lines)
	r.lines = 0
	return r.write(b.String())
}

func (r *MenuRenderer) HideCursor() error {
	return r.write(ansi.HideCursor)
}

func (r *MenuRenderer) ShowCursor() error {
	return r.write(ansi.ShowCursor)
}

func (r *MenuRenderer) rewind(b *strings.Builder, lines int) {
	if lines > 0 {
		b.WriteString(ansi.CursorUp(lines))
	}
	b.WriteString("\r")
	b.WriteString(ansi.EraseScreenBelow)
}

func (r *MenuRenderer) title(changes int) string {
	title := r.styles.title.Render("Select recent branch:")
	switch {
	case changes == 1:
		title += " " + r.styles.dim.Render("(1 change)")
	case changes > 1:
		title += " " + r.styles.dim.Render(fmt.Sprintf("(%d changes)", changes))
	}
	return title
}

func (r *MenuRenderer) indicator(label string, active bool) string {
	if active {
		return "  " + r.styles.marker.Render(label)
	}
	return "  " + r.styles.dim.Render(label)
}

func (r *MenuRenderer) item(name string, current, selected bool) string {
	if r.width > 4 {
		name = ansi.Truncate(name, r.width-4, "…")
	}

	mark := " "
	if current {
		mark = currentMark
	}

	if selected {
		return r.styles.selected.Render(selectedGlyph + " " + mark + " " + name)
	}
	if current {
		return "  " + r.styles.current.Render(mark+" "+name)
	}
	return "  " + mark + " " + name
}

func (r *MenuRenderer) write(s string) error {
	if _, err := io.WriteString(r.out, s); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}
