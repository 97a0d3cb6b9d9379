package systems

import (
	"time"

	"github.com/lixenwraith/snakefx/constants"
	"github.com/lixenwraith/snakefx/engine"
)

// SpawnSystem tops the board up by one item per tick while below the live item threshold
type SpawnSystem struct{}

func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

func (s *SpawnSystem) Update(world *engine.World, dt time.Duration) {
	if world.Items.Len() < constants.MinLiveItems {
		world.SpawnItem(nil)
	}
}
