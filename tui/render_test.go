package tui

import (
	"strings"
	"testing"

	hexview "github.com/hellow554/cursive-hexview"
)

func testRenderer() *Renderer {
	return NewRenderer(NewStyles(&DefaultConfig().Theme))
}

func TestRenderLines(t *testing.T) {
	v := hexview.New([]byte{0xDE, 0xAD, 0xBE, 0xEF}, hexview.Config{
		BytesPerRow:    2,
		BytesPerGroup:  1,
		GroupSeparator: " ",
		AddrSeparator:  ": ",
		ASCIISeparator: " | ",
		ShowASCII:      true,
	})
	v.HandleResize(4)

	out := testRenderer().Render(v)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "DE") || !strings.Contains(lines[0], "AD") {
		t.Errorf("expected hex bytes in line 0, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "BE") || !strings.Contains(lines[1], "EF") {
		t.Errorf("expected hex bytes in line 1, got %q", lines[1])
	}
}

func TestRenderASCIIGloss(t *testing.T) {
	v := hexview.New([]byte{'H', 'i', 0x00}, hexview.DefaultConfig())
	v.HandleResize(1)

	out := testRenderer().Render(v)
	if !strings.Contains(out, "Hi.") {
		t.Errorf("expected ascii gloss with dot substitution, got %q", out)
	}
}

func TestRenderShortRowPadding(t *testing.T) {
	v := hexview.New([]byte{0x41}, hexview.Config{BytesPerRow: 4, ShowASCII: false,
		GroupSeparator: " ", AddrSeparator: ": "})
	v.HandleResize(1)

	out := testRenderer().Render(v)
	// One byte plus three blank 2-char cells with separators.
	if !strings.Contains(out, "41      ") {
		t.Errorf("expected padded short row, got %q", out)
	}
}
