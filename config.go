package hexview

// Config controls the visual layout of a HexView. It is fixed for the
// widget's lifetime unless the host explicitly calls SetConfig; input
// handling never changes it.
type Config struct {
	// BytesPerRow is the number of bytes shown per line. Must be >= 1
	// and a multiple of BytesPerGroup.
	BytesPerRow int

	// BytesPerGroup is the number of bytes printed back to back before a
	// GroupSeparator is inserted. Must be >= 1 and <= BytesPerRow.
	BytesPerGroup int

	// GroupSeparator sits between hex groups.
	GroupSeparator string

	// AddrSeparator sits between the address column and the hex column.
	AddrSeparator string

	// ASCIISeparator sits between the hex column and the ASCII gloss.
	ASCIISeparator string

	// ShowASCII toggles the ASCII gloss column.
	ShowASCII bool

	// StartAddr is the display address of the first byte.
	StartAddr int

	// AddrWidth is the minimum number of hex digits in the address
	// column. 0 means the width is computed from the data length.
	AddrWidth int
}

// DefaultConfig matches the classic hexdump-style layout:
// 16 bytes per row, single-byte groups, ASCII gloss on.
func DefaultConfig() Config {
	return Config{
		BytesPerRow:    16,
		BytesPerGroup:  1,
		GroupSeparator: " ",
		AddrSeparator:  ": ",
		ASCIISeparator: " | ",
		ShowASCII:      true,
		StartAddr:      0,
		AddrWidth:      0,
	}
}

// normalize clamps invalid values back to usable ones so that layout
// arithmetic never divides by zero.
func (c Config) normalize() Config {
	if c.BytesPerRow < 1 {
		c.BytesPerRow = DefaultConfig().BytesPerRow
	}
	if c.BytesPerGroup < 1 {
		c.BytesPerGroup = 1
	}
	if c.BytesPerGroup > c.BytesPerRow {
		c.BytesPerGroup = c.BytesPerRow
	}
	if c.BytesPerRow%c.BytesPerGroup != 0 {
		c.BytesPerGroup = 1
	}
	if c.StartAddr < 0 {
		c.StartAddr = 0
	}
	if c.AddrWidth < 0 {
		c.AddrWidth = 0
	}
	return c
}
