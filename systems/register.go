package systems

import "github.com/lixenwraith/snakefx/engine"

// All returns one instance of every simulation system
func All() []engine.System {
	return []engine.System{
		NewComboSystem(),
		NewEffectSystem(),
		NewMagnetSystem(),
		NewExpirySystem(),
		NewSpawnSystem(),
		NewMovementSystem(),
	}
}

// Install registers every simulation system on the world
func Install(world *engine.World) {
	for _, s := range All() {
		world.AddSystem(s)
	}
}
