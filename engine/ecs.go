package engine

import (
	"slices"
	"time"
)

// System is one ordered stage of the simulation step
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}
