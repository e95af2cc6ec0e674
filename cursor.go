package hexview

// NibblePhase selects which half of the byte under the cursor the next
// hex keystroke edits.
type NibblePhase int

const (
	// NibbleHigh is the most-significant half.
	NibbleHigh NibblePhase = iota
	// NibbleLow is the least-significant half.
	NibbleLow
)

// Cursor tracks the byte offset, the nibble phase used in edit mode, and
// an optional selection anchor. All moves clamp into [0, n) where n is the
// buffer length passed by the caller; the cursor itself holds no length.
type Cursor struct {
	offset int
	phase  NibblePhase
	anchor int // -1 when no selection is active
}

func newCursor() Cursor {
	return Cursor{anchor: -1}
}

func (c *Cursor) Offset() int {
	return c.offset
}

func (c *Cursor) Phase() NibblePhase {
	return c.phase
}

func (c *Cursor) SetPhase(p NibblePhase) {
	c.phase = p
}

// Set clamps pos into [0, n) and reports whether the offset changed.
func (c *Cursor) Set(pos, n int) bool {
	if n <= 0 {
		return false
	}
	if pos < 0 {
		pos = 0
	}
	if pos > n-1 {
		pos = n - 1
	}
	if pos == c.offset {
		return false
	}
	c.offset = pos
	return true
}

// Move shifts the offset by delta bytes, clamped. Moving left at offset 0
// or right at the last byte is a no-op.
func (c *Cursor) Move(delta, n int) bool {
	return c.Set(c.offset+delta, n)
}

// MoveRow shifts the offset by whole rows, keeping the column. The
// destination row is clamped into the buffer's rows; when it is the short
// last row the offset clamps to its last valid byte instead of
// overshooting. Moving past the first or last row is a no-op.
func (c *Cursor) MoveRow(deltaRows, bytesPerRow, n int) bool {
	if n <= 0 || bytesPerRow <= 0 {
		return false
	}
	lastRow := (n - 1) / bytesPerRow
	row := c.offset / bytesPerRow
	col := c.offset % bytesPerRow

	dest := row + deltaRows
	if dest < 0 {
		dest = 0
	}
	if dest > lastRow {
		dest = lastRow
	}
	if dest == row {
		return false
	}
	return c.Set(dest*bytesPerRow+col, n)
}

// StartSelection anchors a selection at the current offset.
func (c *Cursor) StartSelection() {
	c.anchor = c.offset
}

// ClearSelection drops the anchor.
func (c *Cursor) ClearSelection() {
	c.anchor = -1
}

// SelectionRange returns the ordered inclusive range between the anchor
// and the offset. ok is false when no selection is active.
func (c *Cursor) SelectionRange() (lo, hi int, ok bool) {
	if c.anchor < 0 {
		return 0, 0, false
	}
	lo, hi = c.anchor, c.offset
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// clamp pulls the cursor and anchor back into [0, n) after the buffer
// shrank. An anchor beyond the new length is dropped.
func (c *Cursor) clamp(n int) {
	if n <= 0 {
		c.offset = 0
		c.anchor = -1
		c.phase = NibbleHigh
		return
	}
	if c.offset > n-1 {
		c.offset = n - 1
	}
	if c.anchor > n-1 {
		c.anchor = n - 1
	}
}

// reset returns the cursor to its construction state.
func (c *Cursor) reset() {
	c.offset = 0
	c.phase = NibbleHigh
	c.anchor = -1
}
