package hexview

// Cell describes one byte column within a row. Cells past the end of a
// short last row carry InRange == false and render as padding.
type Cell struct {
	Byte     byte
	InRange  bool
	Cursor   bool
	Selected bool
}

// Row is the renderable unit for one buffer row.
type Row struct {
	// Index is the absolute row number.
	Index int
	// Offset is the buffer offset of the first cell.
	Offset int
	// Addr is the display address (Offset plus the configured base).
	Addr int
	// Cells always has Config.BytesPerRow entries.
	Cells []Cell
}

// RowForOffset returns the row holding the given byte offset.
func (v *View) RowForOffset(offset int) int {
	return offset / v.config.BytesPerRow
}

// ColForOffset returns the column of the given byte offset within its row.
func (v *View) ColForOffset(offset int) int {
	return offset % v.config.BytesPerRow
}

// RowCount returns how many rows the data occupies. An empty buffer
// still occupies one (blank) row.
func (v *View) RowCount() int {
	n := v.buf.Len()
	if n == 0 {
		return 1
	}
	return (n + v.config.BytesPerRow - 1) / v.config.BytesPerRow
}

// VisibleRowDescriptors builds the descriptors for the rows currently in
// the viewport, cursor and selection marks included. This is the query
// surface a Renderer consumes.
func (v *View) VisibleRowDescriptors() []Row {
	total := v.RowCount()
	first := v.vp.ScrollRow()
	count := v.vp.VisibleRows()
	if first+count > total {
		count = total - first
	}
	if count <= 0 {
		return nil
	}

	n := v.buf.Len()
	bpr := v.config.BytesPerRow
	selLo, selHi, hasSel := v.cursor.SelectionRange()
	showCursor := v.state != StateDisabled && n > 0

	rows := make([]Row, 0, count)
	for r := first; r < first+count; r++ {
		row := Row{
			Index:  r,
			Offset: r * bpr,
			Addr:   v.config.StartAddr + r*bpr,
			Cells:  make([]Cell, bpr),
		}
		for col := 0; col < bpr; col++ {
			offset := row.Offset + col
			if offset >= n {
				continue
			}
			row.Cells[col] = Cell{
				Byte:     v.buf.Data()[offset],
				InRange:  true,
				Cursor:   showCursor && offset == v.cursor.Offset(),
				Selected: hasSel && offset >= selLo && offset <= selHi,
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// AddrDigits returns the number of hex digits in the address column:
// the smallest width that fits the last display address, raised to the
// configured minimum.
func (v *View) AddrDigits() int {
	digits := 1
	span := v.config.StartAddr + v.buf.Len()
	for w := 16; w < span && digits < 16; w *= 16 {
		digits++
	}
	if digits < v.config.AddrWidth {
		digits = v.config.AddrWidth
	}
	return digits
}

// hexFieldWidth is the width of the hex column including group
// separators.
func (v *View) hexFieldWidth() int {
	c := v.config
	groups := c.BytesPerRow / c.BytesPerGroup
	return groups*2*c.BytesPerGroup + (groups-1)*len(c.GroupSeparator)
}

// RequiredSize returns the width and height needed to display every row
// without clipping.
func (v *View) RequiredSize() (w, h int) {
	c := v.config
	w = v.AddrDigits() + len(c.AddrSeparator) + v.hexFieldWidth()
	if c.ShowASCII {
		w += len(c.ASCIISeparator) + c.BytesPerRow
	}
	return w, v.RowCount()
}

// CursorFromCell converts a widget-relative cell position to the byte
// offset whose hex cell covers it, clamping into the short last row.
// ok is false for an empty buffer.
func (v *View) CursorFromCell(x, y int) (offset int, ok bool) {
	n := v.buf.Len()
	if n == 0 {
		return 0, false
	}

	row := v.vp.ScrollRow() + y
	lastRow := (n - 1) / v.config.BytesPerRow
	if row < 0 {
		row = 0
	}
	if row > lastRow {
		row = lastRow
	}

	col := v.colFromX(x - v.AddrDigits() - len(v.config.AddrSeparator))
	offset = row*v.config.BytesPerRow + col
	if offset > n-1 {
		offset = n - 1
	}
	return offset, true
}

// colFromX maps an x position relative to the hex field start onto a
// byte column, accounting for group separators.
func (v *View) colFromX(x int) int {
	if x < 0 {
		return 0
	}
	c := v.config
	groupWidth := 2*c.BytesPerGroup + len(c.GroupSeparator)
	group := x / groupWidth
	inGroup := (x % groupWidth) / 2
	if inGroup >= c.BytesPerGroup {
		inGroup = c.BytesPerGroup - 1
	}
	col := group*c.BytesPerGroup + inGroup
	if col > c.BytesPerRow-1 {
		col = c.BytesPerRow - 1
	}
	return col
}

// Printable returns the ASCII gloss for a byte: the character itself for
// ASCII graphic values, a dot for everything else (space included).
func Printable(b byte) rune {
	if b > 0x20 && b < 0x7F {
		return rune(b)
	}
	return '.'
}
