package engine

import (
	"time"

	"github.com/lixenwraith/snakefx/components"
)

// Snapshot is a read-only copy of everything presentation draws
type Snapshot struct {
	GridWidth  int
	GridHeight int

	Snake     []components.Point // Tail-first
	Direction components.Direction
	Items     []components.Item
	Effects   []components.ActiveEffect

	Score         int
	HighScore     int
	Multiplier    int
	ComboFraction float64
	ComboActive   bool
	ShieldCharges int

	Now          time.Duration
	Ended        bool
	PendingShake float64
}

// Snapshot copies the current world state
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		GridWidth:     w.Grid.Width,
		GridHeight:    w.Grid.Height,
		Snake:         w.Snake.Cells(),
		Direction:     w.Snake.Direction,
		Items:         w.Items.Items(),
		Effects:       w.Effects.Active(),
		Score:         w.Score.Score,
		HighScore:     w.Score.HighScore,
		Multiplier:    w.Score.Multiplier,
		ComboFraction: w.Score.ComboFraction(),
		ComboActive:   w.Score.ComboActive(),
		ShieldCharges: w.Flags.ShieldCharges,
		Now:           w.Now,
		Ended:         w.ended,
		PendingShake:  w.Feedback.PendingShake(),
	}
}

// EffectRemaining returns the remaining time of an effect in the snapshot
func (s Snapshot) EffectRemaining(kind components.ItemKind) (time.Duration, bool) {
	for _, e := range s.Effects {
		if e.Kind == kind {
			return e.Remaining(s.Now), true
		}
	}
	return 0, false
}
