package tui

import (
	"fmt"
	"strings"

	hexview "github.com/hellow554/cursive-hexview"
)

// Renderer draws the widget's row descriptors with lipgloss styles. It
// implements hexview.Renderer.
type Renderer struct {
	styles *Styles
}

var _ hexview.Renderer = (*Renderer)(nil)

func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render produces one line per visible row:
//
//	0010: 41 42 43 44 ... | ABCD...
//
// with the address padded to the widget's address width and short last
// rows padded with blanks.
func (r *Renderer) Render(v *hexview.View) string {
	cfg := v.Config()
	digits := v.AddrDigits()
	cursorRow := -1
	if !v.IsEmpty() {
		cursorRow = v.RowForOffset(v.CursorOffset())
	}

	var lines []string
	for _, row := range v.VisibleRowDescriptors() {
		var b strings.Builder

		addrStyle := r.styles.Address
		if row.Index == cursorRow {
			addrStyle = r.styles.AddressCursorRow
		}
		b.WriteString(addrStyle.Render(fmt.Sprintf("%0*X", digits, row.Addr)))
		b.WriteString(cfg.AddrSeparator)

		for col, cell := range row.Cells {
			if col > 0 && col%cfg.BytesPerGroup == 0 {
				b.WriteString(cfg.GroupSeparator)
			}
			b.WriteString(r.hexCell(v, cell))
		}

		if cfg.ShowASCII {
			b.WriteString(cfg.ASCIISeparator)
			for _, cell := range row.Cells {
				b.WriteString(r.asciiCell(v, cell))
			}
		}

		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) hexCell(v *hexview.View, cell hexview.Cell) string {
	if !cell.InRange {
		return "  "
	}
	text := fmt.Sprintf("%02X", cell.Byte)

	switch {
	case cell.Cursor && v.Mode() == hexview.ModeEdit:
		// Emphasize the nibble the next keystroke edits.
		active, rest := r.styles.EditNibble, r.styles.CursorEdit
		if v.NibblePhase() == hexview.NibbleHigh {
			return active.Render(text[:1]) + rest.Render(text[1:])
		}
		return rest.Render(text[:1]) + active.Render(text[1:])
	case cell.Cursor && v.Mode() == hexview.ModeSelect:
		return r.styles.CursorSelect.Render(text)
	case cell.Cursor:
		return r.styles.CursorNavigate.Render(text)
	case cell.Selected:
		return r.styles.Selection.Render(text)
	}
	return r.styles.Hex.Render(text)
}

func (r *Renderer) asciiCell(v *hexview.View, cell hexview.Cell) string {
	if !cell.InRange {
		return " "
	}
	text := string(hexview.Printable(cell.Byte))

	switch {
	case cell.Cursor && v.Mode() == hexview.ModeEdit:
		return r.styles.CursorEdit.Render(text)
	case cell.Cursor && v.Mode() == hexview.ModeSelect:
		return r.styles.CursorSelect.Render(text)
	case cell.Cursor:
		return r.styles.CursorNavigate.Render(text)
	case cell.Selected:
		return r.styles.Selection.Render(text)
	}
	return r.styles.ASCII.Render(text)
}
