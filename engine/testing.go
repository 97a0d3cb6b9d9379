package engine

import (
	"github.com/lixenwraith/snakefx/components"
)

// ScriptedRandom replays queued values, then falls back to fixed defaults
// Float64 falls back to DefaultFloat; Intn falls back to a rotating counter
type ScriptedRandom struct {
	Floats       []float64
	Ints         []int
	DefaultFloat float64

	counter int
}

// NewScriptedRandom creates a source whose unscripted Float64 draws never fire a chance event
func NewScriptedRandom() *ScriptedRandom {
	return &ScriptedRandom{DefaultFloat: 0.99}
}

// QueueFloats appends values to the Float64 script
func (r *ScriptedRandom) QueueFloats(v ...float64) *ScriptedRandom {
	r.Floats = append(r.Floats, v...)
	return r
}

// QueueInts appends values to the Intn script
func (r *ScriptedRandom) QueueInts(v ...int) *ScriptedRandom {
	r.Ints = append(r.Ints, v...)
	return r
}

func (r *ScriptedRandom) Float64() float64 {
	if len(r.Floats) == 0 {
		return r.DefaultFloat
	}
	v := r.Floats[0]
	r.Floats = r.Floats[1:]
	return v
}

func (r *ScriptedRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if len(r.Ints) > 0 {
		v := r.Ints[0]
		r.Ints = r.Ints[1:]
		return ((v % n) + n) % n
	}
	r.counter++
	return r.counter % n
}

// NewTestWorld creates a world with no items and the given randomness source
// Seeding happens on a throwaway source so scripts start clean
func NewTestWorld(width, height int, rng Random) *World {
	w := NewWorld(Grid{Width: width, Height: height}, NewScriptedRandom())
	w.Items.Clear()
	w.Feedback.Clear()
	if rng == nil {
		rng = NewScriptedRandom()
	}
	w.Rand = rng
	return w
}

// PlaceItem adds an item at pos spawned at the world's current time
func PlaceItem(w *World, kind components.ItemKind, pos components.Point) components.Item {
	return w.Items.Add(components.Item{
		Kind:      kind,
		Pos:       pos,
		SpawnedAt: w.Now,
		TTL:       1 << 40,
	})
}
