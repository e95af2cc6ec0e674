package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	hexview "github.com/hellow554/cursive-hexview"
	"github.com/hellow554/cursive-hexview/tui"
)

// sample is shown when no file is given, so the widget can be tried
// without any setup.
var sample = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789abcdefghijklmnopqrstuvwxyz")

func main() {
	data := sample
	title := "(sample)"

	if len(os.Args) > 1 {
		raw, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		data = raw
		title = filepath.Base(os.Args[1])
	}

	view := hexview.New(data, hexview.DefaultConfig())
	view.SetDisplayState(hexview.StateEditable)

	model := tui.NewModel(view, title)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
