package hexview

import "testing"

func TestEnsureVisibleScrollsDown(t *testing.T) {
	vp := newViewport()
	vp.SetVisibleRows(3)

	if vp.EnsureVisible(2, 10) {
		t.Error("row 2 already visible, expected no scroll")
	}
	if !vp.EnsureVisible(5, 10) || vp.ScrollRow() != 3 {
		t.Errorf("expected scroll row 3, got %d", vp.ScrollRow())
	}
	// Minimal change: row 5 is now the bottom row.
	if vp.EnsureVisible(3, 10) {
		t.Error("row 3 still visible, expected no scroll")
	}
}

func TestEnsureVisibleScrollsUp(t *testing.T) {
	vp := newViewport()
	vp.SetVisibleRows(2)
	vp.EnsureVisible(9, 10) // scroll to 8

	if !vp.EnsureVisible(4, 10) || vp.ScrollRow() != 4 {
		t.Errorf("expected scroll row 4, got %d", vp.ScrollRow())
	}
}

func TestEnsureVisibleClampsToData(t *testing.T) {
	vp := newViewport()
	vp.SetVisibleRows(5)

	// Window larger than the data: pin to the first row.
	vp.EnsureVisible(1, 2)
	if vp.ScrollRow() != 0 {
		t.Errorf("expected scroll row 0, got %d", vp.ScrollRow())
	}

	// Never past the last row.
	vp.SetVisibleRows(2)
	vp.EnsureVisible(9, 10)
	if vp.ScrollRow() != 8 {
		t.Errorf("expected scroll row 8, got %d", vp.ScrollRow())
	}
}

func TestVisibleRange(t *testing.T) {
	vp := newViewport()
	vp.SetVisibleRows(2)

	first, last, ok := vp.VisibleRange(10, 4)
	if !ok || first != 0 || last != 7 {
		t.Errorf("expected (0,7), got (%d,%d) ok=%v", first, last, ok)
	}

	vp.EnsureVisible(2, 3) // scroll to 1
	first, last, ok = vp.VisibleRange(10, 4)
	if !ok || first != 4 || last != 9 {
		t.Errorf("expected (4,9), got (%d,%d) ok=%v", first, last, ok)
	}

	if _, _, ok := vp.VisibleRange(0, 4); ok {
		t.Error("expected no visible range for empty data")
	}
}

func TestSetVisibleRowsFloor(t *testing.T) {
	vp := newViewport()
	vp.SetVisibleRows(0)
	if vp.VisibleRows() != 1 {
		t.Errorf("expected floor of 1 visible row, got %d", vp.VisibleRows())
	}
}
