package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/snakefx/components"
	"github.com/lixenwraith/snakefx/constants"
	"github.com/lixenwraith/snakefx/status"
)

// World owns the whole simulation state of one run
// It is mutated only by Step and Reset on the game goroutine
type World struct {
	Grid     Grid
	Snake    *Snake
	Items    *ItemPool
	Effects  *EffectSet
	Score    ScoreState
	Input    *InputLatch
	Feedback *Feedback
	Rand     Random
	Stats    *status.Registry // Session counters, survive Reset

	// Derived each tick by the effect system
	Flags           EffectFlags
	ScoreMultiplier int

	SinceMove time.Duration // Accumulated time since the last committed grid step
	Now       time.Duration // Run time, advanced only by Step
	RunID     uuid.UUID

	ended          bool
	highScoreDirty bool
	systems        []System
}

// NewWorld creates a world on grid and seeds a fresh run
func NewWorld(grid Grid, rng Random) *World {
	if rng == nil {
		rng = NewRandom(0)
	}
	w := &World{
		Grid:     grid,
		Items:    NewItemPool(),
		Effects:  NewEffectSet(),
		Input:    NewInputLatch(components.DirRight),
		Feedback: NewFeedback(),
		Rand:     rng,
		Stats:    status.NewRegistry(),
		systems:  make([]System, 0, 8),
	}
	w.Reset()
	return w
}

// Reset starts a fresh run, keeping only the high score and registered systems
func (w *World) Reset() {
	w.Snake = NewSnake(w.Grid)
	w.Items.Clear()
	w.Effects.Clear()
	w.Feedback.Clear()
	w.Score = NewScoreState(w.Score.HighScore)
	w.Input.Set(w.Snake.Direction)
	w.Flags = w.Effects.Flags()
	w.ScoreMultiplier = w.Flags.ScoreMultiplier(w.Score.Multiplier)
	w.SinceMove = 0
	w.Now = 0
	w.RunID = uuid.New()
	w.ended = false
	w.highScoreDirty = false

	gem := components.KindGem
	w.SpawnItem(&gem)
	for i := 1; i < constants.MinLiveItems; i++ {
		w.SpawnItem(nil)
	}
}

// Step advances the run by dt through every system in priority order
// A no-op once the run has ended
func (w *World) Step(dt time.Duration) {
	if w.ended {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.Now += dt
	for _, s := range w.systems {
		s.Update(w, dt)
		if w.ended {
			return
		}
	}
}

// SpawnItem places one item at a free cell at the current run time
func (w *World) SpawnItem(forced *components.ItemKind) components.Item {
	w.Stats.Inc(status.ItemsSpawned)
	return w.Items.Spawn(w.Rand, w.Grid, w.Snake, w.Now, forced)
}

// EndRun marks the run as over
func (w *World) EndRun() {
	w.ended = true
}

// Ended reports whether the run is over
func (w *World) Ended() bool {
	return w.ended
}

// SetHighScore seeds the high score loaded from persistence
func (w *World) SetHighScore(high int) {
	w.Score.HighScore = max(w.Score.HighScore, high)
}

// MarkHighScore flags a high score change for the controller to persist
func (w *World) MarkHighScore() {
	w.highScoreDirty = true
}

// TakeHighScore returns the high score and clears the change flag
func (w *World) TakeHighScore() (int, bool) {
	dirty := w.highScoreDirty
	w.highScoreDirty = false
	return w.Score.HighScore, dirty
}
