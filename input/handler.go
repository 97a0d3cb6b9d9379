package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakefx/components"
)

// Target receives the effects of translated intents
type Target interface {
	SetDirection(dir components.Direction)
	Start()
	TogglePause()
	Reset()
	ToggleMute()
	Resize()
}

// Handler translates terminal events into intents
type Handler struct {
	table *KeyTable
}

// NewHandler creates a handler; nil uses the default bindings
func NewHandler(table *KeyTable) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Handler{table: table}
}

// Translate maps one terminal event to an intent
func (h *Handler) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			if in, ok := h.table.Runes[unicode.ToLower(ev.Rune())]; ok {
				return in
			}
			return Intent{}
		}
		if in, ok := h.table.SpecialKeys[ev.Key()]; ok {
			return in
		}
	}
	return Intent{}
}

// Dispatch translates ev and applies it to target, reporting whether to quit
func (h *Handler) Dispatch(ev tcell.Event, target Target) (quit bool) {
	in := h.Translate(ev)
	switch in.Type {
	case IntentQuit:
		return true
	case IntentMove:
		target.SetDirection(in.Dir)
	case IntentStart:
		target.Start()
	case IntentTogglePause:
		target.TogglePause()
	case IntentReset:
		target.Reset()
	case IntentToggleMute:
		target.ToggleMute()
	case IntentResize:
		target.Resize()
	}
	return false
}
