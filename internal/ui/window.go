package ui

// Window is the visible slice of a list: entries [Offset, Offset+Len).
type Window struct {
	Offset int
	Len    int
	Cursor int
	Total  int
}

// ComputeWindow centres the cursor in a viewport of the given size, clamped
// so the window never runs past either end of the list. Lists that fit the
// viewport are shown whole from offset zero.
func ComputeWindow(cursor, total, viewport int) Window {
	if total <= 0 {
		return Window{}
	}
	viewport = max(viewport, 1)
	cursor = min(max(cursor, 0), total-1)

	length := min(viewport, total)
	offset := min(max(cursor-viewport/2, 0), max(0, total-viewport))

	return Window{Offset: offset, Len: length, Cursor: cursor, Total: total}
}

// Highlight is the cursor position within the window.
func (w Window) Highlight() int {
	return w.Cursor - w.Offset
}

func (w Window) End() int {
	return w.Offset + w.Len
}

// HasLess reports entries hidden above the window.
func (w Window) HasLess() bool {
	return w.Offset > 0
}

// HasMore reports entries hidden below the window.
func (w Window) HasMore() bool {
	return w.End() < w.Total
}
