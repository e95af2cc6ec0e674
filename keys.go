package hexview

// KeyCode is a semantic key event. The host adapter owns the physical
// keymap and translates its toolkit's events into these codes, so the
// core never sees terminal escape sequences or toolkit key types.
type KeyCode int

const (
	// KeyNone is the zero value and is always ignored.
	KeyNone KeyCode = iota

	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown

	// KeyLineHome and KeyLineEnd move within the current row.
	KeyLineHome
	KeyLineEnd

	// KeyTop and KeyBottom move to the first and last byte of the data.
	KeyTop
	KeyBottom

	// KeyEnterEdit toggles Edit mode (requires StateEditable).
	KeyEnterEdit

	// KeySelect toggles Select mode, anchoring a selection.
	KeySelect

	// KeyExit leaves Edit or Select mode back to Navigate.
	KeyExit

	// KeyRune carries a literal character; in Edit mode hex digits
	// write nibbles.
	KeyRune
)

// Key is one discrete key event delivered by the host.
type Key struct {
	Code KeyCode
	Rune rune // set when Code == KeyRune
}

// hexNibble converts a hex digit to its value, case-insensitively.
func hexNibble(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}

// isNavigation reports whether the code moves the cursor.
func (k KeyCode) isNavigation() bool {
	switch k {
	case KeyLeft, KeyRight, KeyUp, KeyDown, KeyPageUp, KeyPageDown,
		KeyLineHome, KeyLineEnd, KeyTop, KeyBottom:
		return true
	}
	return false
}
