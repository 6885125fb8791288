package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pingpong/internal/game"
)

// KeyID converts a key event to the game's lowercase key identifier
func KeyID(key tcell.Key, r rune) (game.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return game.KeyArrowUp, true
	case tcell.KeyDown:
		return game.KeyArrowDown, true
	case tcell.KeyLeft:
		return "arrowleft", true
	case tcell.KeyRight:
		return "arrowright", true
	case tcell.KeyRune:
		return game.Key(string(unicode.ToLower(r))), true
	}
	return "", false
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}
