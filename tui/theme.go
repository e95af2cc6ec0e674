package tui

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Address             string `toml:"address"`
	AddressCursorRow    string `toml:"address_cursor_row"`
	Hex                 string `toml:"hex"`
	ASCII               string `toml:"ascii"`
	CursorBackground    string `toml:"cursor_background"`
	EditBackground      string `toml:"edit_background"`
	EditNibble          string `toml:"edit_nibble"`
	SelectBackground    string `toml:"select_background"`
	SelectionBackground string `toml:"selection_background"`
	Header              string `toml:"header"`
	Status              string `toml:"status"`
	StatusBackground    string `toml:"status_background"`
}

type Config struct {
	Theme Theme `toml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: Theme{
			Address:             "#888888",
			AddressCursorRow:    "#FFFFFF",
			Hex:                 "#CCCCCC",
			ASCII:               "#AAAAAA",
			CursorBackground:    "#0000FF",
			EditBackground:      "#AA0000",
			EditNibble:          "#FFFF00",
			SelectBackground:    "#0088AA",
			SelectionBackground: "#FFAA00",
			Header:              "#888888",
			Status:              "#FFFFFF",
			StatusBackground:    "#0000FF",
		},
	}
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hexview.toml"
	}
	return filepath.Join(home, ".config", "hexview", "hexview.toml")
}

// Load reads the theme file, falling back to defaults when it does not
// exist.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	path := ConfigPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path := ConfigPath()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

type Styles struct {
	Address          lipgloss.Style
	AddressCursorRow lipgloss.Style
	Hex              lipgloss.Style
	ASCII            lipgloss.Style
	CursorNavigate   lipgloss.Style
	CursorEdit       lipgloss.Style
	EditNibble       lipgloss.Style
	CursorSelect     lipgloss.Style
	Selection        lipgloss.Style
	Header           lipgloss.Style
	Status           lipgloss.Style
}

func NewStyles(theme *Theme) *Styles {
	return &Styles{
		Address: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Address)),
		AddressCursorRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.AddressCursorRow)).
			Bold(true),
		Hex: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Hex)),
		ASCII: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ASCII)),
		CursorNavigate: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.CursorBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		CursorEdit: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.EditBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		EditNibble: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.EditBackground)).
			Foreground(lipgloss.Color(theme.EditNibble)).
			Bold(true),
		CursorSelect: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.SelectBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		Selection: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.SelectionBackground)).
			Foreground(lipgloss.Color("#000000")),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Header)),
		Status: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.StatusBackground)).
			Foreground(lipgloss.Color(theme.Status)),
	}
}
