package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakefx/components"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings, matched case-insensitively
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	up := Intent{Type: IntentMove, Dir: components.DirUp}
	down := Intent{Type: IntentMove, Dir: components.DirDown}
	left := Intent{Type: IntentMove, Dir: components.DirLeft}
	right := Intent{Type: IntentMove, Dir: components.DirRight}

	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     up,
			tcell.KeyDown:   down,
			tcell.KeyLeft:   left,
			tcell.KeyRight:  right,
			tcell.KeyEnter:  {Type: IntentStart},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
		},
		Runes: map[rune]Intent{
			'w': up,
			's': down,
			'a': left,
			'd': right,
			' ': {Type: IntentTogglePause},
			'r': {Type: IntentReset},
			'm': {Type: IntentToggleMute},
			'q': {Type: IntentQuit},
		},
	}
}
