package systems

import (
	"time"

	"github.com/lixenwraith/snakefx/constants"
	"github.com/lixenwraith/snakefx/engine"
)

// ComboSystem counts the combo window down and drops the multiplier when it closes
type ComboSystem struct{}

func NewComboSystem() *ComboSystem {
	return &ComboSystem{}
}

func (s *ComboSystem) Priority() int {
	return constants.PriorityCombo
}

func (s *ComboSystem) Update(world *engine.World, dt time.Duration) {
	world.Score.DecayCombo(dt)
}
