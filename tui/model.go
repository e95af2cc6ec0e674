// Package tui adapts the hexview core to bubbletea hosts: it maps key,
// mouse, and resize messages onto the core's event intake and renders
// the row descriptors with lipgloss.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	hexview "github.com/hellow554/cursive-hexview"
)

// headerRows is the chrome above the hex rows (column header), and
// statusRows the chrome below (status line).
const (
	headerRows = 1
	statusRows = 1
)

type Model struct {
	view     *hexview.View
	config   *Config
	styles   *Styles
	renderer *Renderer
	title    string
	width    int
	height   int
}

// NewModel wraps a widget for use as a bubbletea model. The theme is
// loaded from the user's config file, falling back to defaults.
func NewModel(view *hexview.View, title string) *Model {
	cfg, err := Load()
	if err != nil {
		cfg = DefaultConfig()
	}
	styles := NewStyles(&cfg.Theme)

	return &Model{
		view:     view,
		config:   cfg,
		styles:   styles,
		renderer: NewRenderer(styles),
		title:    title,
	}
}

// HexView returns the wrapped widget for read-back.
func (m *Model) HexView() *hexview.View {
	return m.view
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.HandleResize(m.contentRows())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			// Quit is the host's concern, never the widget's. In Edit
			// mode 'q' is still a (non-hex) widget key.
			if m.view.Mode() != hexview.ModeEdit || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
		}
		if key, ok := mapKey(msg); ok {
			m.view.HandleKey(key)
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.view.HandleMouse(msg.X, msg.Y-headerRows)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderer.Render(m.view))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

// contentRows is the height left for hex rows after the chrome.
func (m *Model) contentRows() int {
	rows := m.height - headerRows - statusRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// renderHeader prints the per-column byte indices above the hex field,
// aligned with the renderer's output.
func (m *Model) renderHeader() string {
	cfg := m.view.Config()

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", m.view.AddrDigits()+len(cfg.AddrSeparator)))

	cursorCol := -1
	if !m.view.IsEmpty() {
		cursorCol = m.view.ColForOffset(m.view.CursorOffset())
	}
	for col := 0; col < cfg.BytesPerRow; col++ {
		if col > 0 && col%cfg.BytesPerGroup == 0 {
			b.WriteString(cfg.GroupSeparator)
		}
		text := fmt.Sprintf("%02X", col)
		if col == cursorCol {
			b.WriteString(m.styles.AddressCursorRow.Render(text))
		} else {
			b.WriteString(m.styles.Header.Render(text))
		}
	}
	return b.String()
}

func (m *Model) renderStatus() string {
	v := m.view

	var parts []string
	if m.title != "" {
		parts = append(parts, m.title)
	}
	parts = append(parts, fmt.Sprintf("%d bytes", v.Len()))
	if !v.IsEmpty() {
		parts = append(parts, fmt.Sprintf("offset 0x%X", v.CursorOffset()))
	}
	parts = append(parts, modeLabel(v))
	if lo, hi, ok := v.SelectionRange(); ok {
		parts = append(parts, fmt.Sprintf("sel 0x%X-0x%X (%d)", lo, hi, hi-lo+1))
	}

	status := " " + strings.Join(parts, "  |  ")
	return m.styles.Status.Width(m.width).Render(status)
}

func modeLabel(v *hexview.View) string {
	switch v.Mode() {
	case hexview.ModeEdit:
		if v.NibblePhase() == hexview.NibbleHigh {
			return "EDIT (hi)"
		}
		return "EDIT (lo)"
	case hexview.ModeSelect:
		return "SELECT"
	}
	if v.DisplayState() == hexview.StateEditable {
		return "NAV (r to edit)"
	}
	return "NAV"
}
