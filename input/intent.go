package input

import "github.com/lixenwraith/snakefx/components"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone        IntentType = iota
	IntentQuit                   // q, Esc, Ctrl+C
	IntentMove                   // Arrows, WASD
	IntentStart                  // Enter
	IntentTogglePause            // Space
	IntentReset                  // r
	IntentToggleMute             // m
	IntentResize                 // Terminal resize event
)

// Intent is one translated input event
type Intent struct {
	Type IntentType
	Dir  components.Direction // IntentMove only
}
