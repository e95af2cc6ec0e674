package hexview

// RedrawHint tells the host what a handled event invalidated.
type RedrawHint int

const (
	// RedrawNone means the event changed nothing visible.
	RedrawNone RedrawHint = iota
	// RedrawCursor means only highlight positions moved.
	RedrawCursor
	// RedrawData means byte values changed.
	RedrawData
	// RedrawScroll means the viewport scrolled and every row moved.
	RedrawScroll
)

func (h RedrawHint) String() string {
	switch h {
	case RedrawNone:
		return "none"
	case RedrawCursor:
		return "cursor"
	case RedrawData:
		return "data"
	case RedrawScroll:
		return "scroll"
	}
	return "unknown"
}

// Renderer turns the widget's visible rows into host-toolkit output.
// Implementations live outside the core; the tui package provides a
// lipgloss-based one for bubbletea hosts.
type Renderer interface {
	// Render draws the rows returned by View.VisibleRowDescriptors.
	Render(v *View) string
}
