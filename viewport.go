package hexview

// Viewport derives which rows are visible from the scroll position and
// the row count the host's layout granted us.
type Viewport struct {
	scrollRow   int
	visibleRows int
}

func newViewport() Viewport {
	return Viewport{visibleRows: 1}
}

func (v *Viewport) ScrollRow() int {
	return v.scrollRow
}

func (v *Viewport) VisibleRows() int {
	return v.visibleRows
}

// SetVisibleRows records the row count reported by the host layout.
func (v *Viewport) SetVisibleRows(n int) {
	if n < 1 {
		n = 1
	}
	v.visibleRows = n
}

// EnsureVisible scrolls by the minimum number of whole rows so that row
// lies within the visible window, never past the first or last row of the
// data. It reports whether the scroll position changed.
func (v *Viewport) EnsureVisible(row, totalRows int) bool {
	old := v.scrollRow

	if row < v.scrollRow {
		v.scrollRow = row
	} else if row >= v.scrollRow+v.visibleRows {
		v.scrollRow = row - v.visibleRows + 1
	}

	// The window itself must stay on the data.
	maxScroll := totalRows - v.visibleRows
	if maxScroll < 0 {
		maxScroll = 0
	}
	if v.scrollRow > maxScroll {
		v.scrollRow = maxScroll
	}
	if v.scrollRow < 0 {
		v.scrollRow = 0
	}

	return v.scrollRow != old
}

// VisibleRange returns the first and last byte offsets on screen for a
// buffer of n bytes. ok is false when nothing is visible (empty buffer or
// the scroll position lies past the data).
func (v *Viewport) VisibleRange(n, bytesPerRow int) (first, last int, ok bool) {
	if n <= 0 || bytesPerRow <= 0 {
		return 0, 0, false
	}
	first = v.scrollRow * bytesPerRow
	if first >= n {
		return 0, 0, false
	}
	last = first + v.visibleRows*bytesPerRow - 1
	if last > n-1 {
		last = n - 1
	}
	return first, last, true
}

func (v *Viewport) reset() {
	v.scrollRow = 0
}
