// Package hexview implements the model and interaction logic of a
// terminal hex-viewing/editing widget: an exclusively-owned byte buffer,
// cursor and selection tracking, viewport scrolling, and the key state
// machine that ties them together. Drawing and event delivery belong to
// the host toolkit; the tui subpackage adapts the core to bubbletea.
package hexview

import (
	"github.com/hellow554/cursive-hexview/internal/bytebuf"
)

// DisplayState controls how much interaction the widget allows.
type DisplayState int

const (
	// StateDisabled ignores every key and mouse event.
	StateDisabled DisplayState = iota
	// StateEnabled allows navigation and selection but not editing.
	StateEnabled
	// StateEditable allows everything, including Edit mode.
	StateEditable
)

// Mode is the input state the widget is in.
type Mode int

const (
	// ModeNavigate is the default: keys move the cursor.
	ModeNavigate Mode = iota
	// ModeEdit routes hex digits into the byte under the cursor.
	ModeEdit
	// ModeSelect extends a selection while the cursor moves.
	ModeSelect
)

// View is a hex-view widget instance. It is not safe for concurrent use;
// the host event loop must deliver events one at a time.
type View struct {
	buf    *bytebuf.Buffer
	config Config
	cursor Cursor
	vp     Viewport
	state  DisplayState
	mode   Mode
}

// New creates a widget wrapping data with the given config. The widget
// takes ownership of the slice. The initial state is Enabled; call
// SetDisplayState(StateEditable) to allow editing.
func New(data []byte, config Config) *View {
	return &View{
		buf:    bytebuf.New(data),
		config: config.normalize(),
		cursor: newCursor(),
		vp:     newViewport(),
		state:  StateEnabled,
	}
}

// Len returns the data length.
func (v *View) Len() int {
	return v.buf.Len()
}

// IsEmpty reports whether there is no data. An empty widget accepts no
// navigation or editing, only resize notifications.
func (v *View) IsEmpty() bool {
	return v.buf.IsEmpty()
}

// Data returns the underlying bytes. The widget keeps ownership.
func (v *View) Data() []byte {
	return v.buf.Data()
}

// SetData replaces the buffer, resets the cursor to offset 0 (or the
// empty disabled state), clears any selection, and resets the scroll.
func (v *View) SetData(data []byte) {
	v.buf.SetData(data)
	v.cursor.reset()
	v.vp.reset()
	v.mode = ModeNavigate
}

// SetLen resizes the data to n bytes, padding with zeros on growth and
// truncating on shrink. The cursor, selection, and scroll are clamped
// into the new bounds.
func (v *View) SetLen(n int) {
	v.buf.SetLen(n)
	v.cursor.clamp(v.buf.Len())
	v.vp.EnsureVisible(v.cursorRow(), v.RowCount())
}

// Config returns the current display configuration.
func (v *View) Config() Config {
	return v.config
}

// SetConfig replaces the display configuration and re-anchors the
// viewport, since the cursor's row may have changed.
func (v *View) SetConfig(config Config) {
	v.config = config.normalize()
	v.vp.EnsureVisible(v.cursorRow(), v.RowCount())
}

// DisplayState returns the current interaction state.
func (v *View) DisplayState() DisplayState {
	return v.state
}

// SetDisplayState changes the interaction state. Leaving StateEditable
// while in Edit mode drops back to Navigate, as does disabling the
// widget in Select mode.
func (v *View) SetDisplayState(state DisplayState) {
	v.state = state
	if v.mode == ModeEdit && state != StateEditable {
		v.mode = ModeNavigate
	}
	if v.mode == ModeSelect && state == StateDisabled {
		v.cursor.ClearSelection()
		v.mode = ModeNavigate
	}
}

// Mode returns the current input mode.
func (v *View) Mode() Mode {
	return v.mode
}

// CursorOffset returns the byte offset under the cursor. For an empty
// buffer the value is 0 and meaningless.
func (v *View) CursorOffset() int {
	return v.cursor.Offset()
}

// NibblePhase returns which half-byte the next hex keystroke edits.
func (v *View) NibblePhase() NibblePhase {
	return v.cursor.Phase()
}

// SelectionRange returns the inclusive selected range, if any.
func (v *View) SelectionRange() (lo, hi int, ok bool) {
	return v.cursor.SelectionRange()
}

// ScrollRow returns the first visible row.
func (v *View) ScrollRow() int {
	return v.vp.ScrollRow()
}

// VisibleRange returns the first and last byte offsets on screen.
func (v *View) VisibleRange() (first, last int, ok bool) {
	return v.vp.VisibleRange(v.buf.Len(), v.config.BytesPerRow)
}

// HandleResize records the row count granted by the host layout and
// scrolls so the cursor stays visible. It is honored in every state,
// including Disabled and the empty buffer.
func (v *View) HandleResize(visibleRows int) RedrawHint {
	v.vp.SetVisibleRows(visibleRows)
	if v.vp.EnsureVisible(v.cursorRow(), v.RowCount()) {
		return RedrawScroll
	}
	return RedrawNone
}

// HandleKey consumes one key event and reports what it invalidated.
// Empty buffers and the Disabled state ignore all keys.
func (v *View) HandleKey(k Key) RedrawHint {
	if v.state == StateDisabled || v.buf.IsEmpty() {
		return RedrawNone
	}
	switch v.mode {
	case ModeEdit:
		return v.editKey(k)
	case ModeSelect:
		return v.selectKey(k)
	default:
		return v.navigateKey(k)
	}
}

// HandleMouse places the cursor on the byte whose cell covers the
// widget-relative position (x, y), clamped into the data.
func (v *View) HandleMouse(x, y int) RedrawHint {
	if v.state == StateDisabled || v.buf.IsEmpty() {
		return RedrawNone
	}
	offset, ok := v.CursorFromCell(x, y)
	if !ok {
		return RedrawNone
	}
	if v.mode != ModeSelect {
		v.cursor.ClearSelection()
	}
	moved := v.cursor.Set(offset, v.buf.Len())
	if !moved {
		return RedrawNone
	}
	if v.mode == ModeEdit {
		v.cursor.SetPhase(NibbleHigh)
	}
	if v.vp.EnsureVisible(v.cursorRow(), v.RowCount()) {
		return RedrawScroll
	}
	return RedrawCursor
}

func (v *View) navigateKey(k Key) RedrawHint {
	switch k.Code {
	case KeyEnterEdit:
		if v.state != StateEditable {
			return RedrawNone
		}
		v.mode = ModeEdit
		v.cursor.SetPhase(NibbleHigh)
		return RedrawCursor
	case KeySelect:
		v.mode = ModeSelect
		v.cursor.StartSelection()
		return RedrawCursor
	}
	_, hint := v.moveKey(k.Code)
	return hint
}

func (v *View) editKey(k Key) RedrawHint {
	if k.Code == KeyRune {
		if nib, ok := hexNibble(k.Rune); ok {
			return v.writeNibble(nib)
		}
		// Any non-hex character leaves Edit mode; nibble writes are
		// committed immediately, so nothing is discarded.
		v.mode = ModeNavigate
		return RedrawCursor
	}
	if k.Code.isNavigation() {
		moved, hint := v.moveKey(k.Code)
		if moved {
			v.cursor.SetPhase(NibbleHigh)
		}
		return hint
	}
	// KeyExit, KeyEnterEdit (toggle), and everything else return to
	// Navigate.
	v.mode = ModeNavigate
	return RedrawCursor
}

func (v *View) selectKey(k Key) RedrawHint {
	switch k.Code {
	case KeySelect, KeyExit:
		v.cursor.ClearSelection()
		v.mode = ModeNavigate
		return RedrawCursor
	}
	if k.Code.isNavigation() {
		// The anchor stays put; moving the offset extends the range.
		_, hint := v.moveKey(k.Code)
		return hint
	}
	return RedrawNone
}

// moveKey applies one navigation key and reports whether the offset
// changed plus the resulting redraw hint.
func (v *View) moveKey(code KeyCode) (bool, RedrawHint) {
	n := v.buf.Len()
	bpr := v.config.BytesPerRow

	var moved bool
	switch code {
	case KeyLeft:
		moved = v.cursor.Move(-1, n)
	case KeyRight:
		moved = v.cursor.Move(1, n)
	case KeyUp:
		moved = v.cursor.MoveRow(-1, bpr, n)
	case KeyDown:
		moved = v.cursor.MoveRow(1, bpr, n)
	case KeyPageUp:
		moved = v.cursor.MoveRow(-v.vp.VisibleRows(), bpr, n)
	case KeyPageDown:
		moved = v.cursor.MoveRow(v.vp.VisibleRows(), bpr, n)
	case KeyLineHome:
		row := v.cursor.Offset() / bpr
		moved = v.cursor.Set(row*bpr, n)
	case KeyLineEnd:
		row := v.cursor.Offset() / bpr
		moved = v.cursor.Set(row*bpr+bpr-1, n)
	case KeyTop:
		moved = v.cursor.Set(0, n)
	case KeyBottom:
		moved = v.cursor.Set(n-1, n)
	default:
		return false, RedrawNone
	}

	if !moved {
		return false, RedrawNone
	}
	if v.vp.EnsureVisible(v.cursorRow(), v.RowCount()) {
		return true, RedrawScroll
	}
	return true, RedrawCursor
}

// writeNibble merges one hex digit into the byte under the cursor. The
// high nibble keeps the cursor in place and flips the phase to Low; the
// low nibble advances the cursor one byte and resets the phase to High.
// The last byte behaves like any other, except the advance clamps.
func (v *View) writeNibble(nib byte) RedrawHint {
	offset := v.cursor.Offset()
	old, err := v.buf.Read(offset)
	if err != nil {
		// Unreachable with a correctly clamped cursor; abort the
		// operation and leave all state as it was.
		return RedrawNone
	}

	var merged byte
	if v.cursor.Phase() == NibbleHigh {
		merged = (nib << 4) | (old & 0x0F)
	} else {
		merged = (old & 0xF0) | nib
	}
	if err := v.buf.Write(offset, merged); err != nil {
		return RedrawNone
	}

	if v.cursor.Phase() == NibbleHigh {
		v.cursor.SetPhase(NibbleLow)
		return RedrawData
	}
	v.cursor.SetPhase(NibbleHigh)
	v.cursor.Move(1, v.buf.Len())
	if v.vp.EnsureVisible(v.cursorRow(), v.RowCount()) {
		return RedrawScroll
	}
	return RedrawData
}

// cursorRow returns the row holding the cursor.
func (v *View) cursorRow() int {
	return v.RowForOffset(v.cursor.Offset())
}
