package systems

import (
	"time"

	"github.com/lixenwraith/snakefx/components"
	"github.com/lixenwraith/snakefx/constants"
	"github.com/lixenwraith/snakefx/engine"
)

// MagnetSystem drifts nearby gems toward the head while magnet is active
type MagnetSystem struct{}

func NewMagnetSystem() *MagnetSystem {
	return &MagnetSystem{}
}

func (s *MagnetSystem) Priority() int {
	return constants.PriorityMagnet
}

func (s *MagnetSystem) Update(world *engine.World, dt time.Duration) {
	if !world.Flags.Magnet {
		return
	}
	head := world.Snake.Head()

	world.Items.ForEach(func(it *components.Item) {
		if it.Kind != components.KindGem {
			return
		}
		d := world.Grid.Distance(it.Pos, head)
		if d <= 0 || d >= constants.MagnetRadius {
			return
		}

		// Each axis rolls independently, even when already aligned
		sx, sy := world.Grid.StepToward(it.Pos, head)
		pos := it.Pos
		if world.Rand.Float64() < constants.MagnetPullChance {
			pos.X += sx
		}
		if world.Rand.Float64() < constants.MagnetPullChance {
			pos.Y += sy
		}
		it.Pos = world.Grid.Wrap(pos)
	})
}
