package systems

import (
	"time"

	"github.com/lixenwraith/snakefx/constants"
	"github.com/lixenwraith/snakefx/engine"
	"github.com/lixenwraith/snakefx/status"
)

// ExpirySystem removes items whose time-to-live has run out
type ExpirySystem struct{}

func NewExpirySystem() *ExpirySystem {
	return &ExpirySystem{}
}

func (s *ExpirySystem) Priority() int {
	return constants.PriorityExpiry
}

func (s *ExpirySystem) Update(world *engine.World, dt time.Duration) {
	if expired := world.Items.Expire(world.Now); len(expired) > 0 {
		world.Stats.Add(status.ItemsExpired, int64(len(expired)))
	}
}
