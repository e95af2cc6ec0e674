package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	hexview "github.com/hellow554/cursive-hexview"
)

// mapKey translates a bubbletea key message into the core's semantic key.
// ok is false for keys the widget has no meaning for (the model may still
// handle them itself, e.g. quit).
func mapKey(msg tea.KeyMsg) (hexview.Key, bool) {
	switch msg.String() {
	case "up":
		return hexview.Key{Code: hexview.KeyUp}, true
	case "down":
		return hexview.Key{Code: hexview.KeyDown}, true
	case "left":
		return hexview.Key{Code: hexview.KeyLeft}, true
	case "right":
		return hexview.Key{Code: hexview.KeyRight}, true
	case "pgup":
		return hexview.Key{Code: hexview.KeyPageUp}, true
	case "pgdown":
		return hexview.Key{Code: hexview.KeyPageDown}, true
	case "home":
		return hexview.Key{Code: hexview.KeyLineHome}, true
	case "end":
		return hexview.Key{Code: hexview.KeyLineEnd}, true
	case "ctrl+home", "shift+home":
		return hexview.Key{Code: hexview.KeyTop}, true
	case "ctrl+end", "shift+end":
		return hexview.Key{Code: hexview.KeyBottom}, true
	case "enter", "r", "R":
		return hexview.Key{Code: hexview.KeyEnterEdit}, true
	case "v", "V", " ":
		return hexview.Key{Code: hexview.KeySelect}, true
	case "esc":
		return hexview.Key{Code: hexview.KeyExit}, true
	}

	if runes := msg.Runes; len(runes) == 1 {
		return hexview.Key{Code: hexview.KeyRune, Rune: runes[0]}, true
	}
	return hexview.Key{}, false
}
