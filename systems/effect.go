package systems

import (
	"time"

	"github.com/lixenwraith/snakefx/constants"
	"github.com/lixenwraith/snakefx/engine"
)

// EffectSystem prunes expired effects and derives the flags later systems read this tick
type EffectSystem struct{}

func NewEffectSystem() *EffectSystem {
	return &EffectSystem{}
}

func (s *EffectSystem) Priority() int {
	return constants.PriorityEffect
}

// Update recomputes flags from scratch; the score multiplier uses the pre-pickup numeric multiplier
func (s *EffectSystem) Update(world *engine.World, dt time.Duration) {
	world.Flags = world.Effects.Tick(world.Now)
	world.ScoreMultiplier = world.Flags.ScoreMultiplier(world.Score.Multiplier)
}
