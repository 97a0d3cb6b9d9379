package engine

import "sync"

// GamePhase is the run lifecycle phase
type GamePhase int

const (
	PhaseIdle GamePhase = iota
	PhaseRunning
	PhasePaused
	PhaseEnded
)

// String returns phase name for debugging
func (p GamePhase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// GameState guards the lifecycle phase
// Transitions that do not apply to the current phase return false and change nothing
type GameState struct {
	mu    sync.RWMutex
	phase GamePhase
}

// NewGameState starts in PhaseIdle
func NewGameState() *GameState {
	return &GameState{phase: PhaseIdle}
}

// Phase returns the current phase
func (gs *GameState) Phase() GamePhase {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.phase
}

// IsRunning reports whether steps should be taken
func (gs *GameState) IsRunning() bool {
	return gs.Phase() == PhaseRunning
}

// Start moves to Running from any phase
func (gs *GameState) Start() {
	gs.set(PhaseRunning)
}

// Pause moves Running to Paused
func (gs *GameState) Pause() bool {
	return gs.transition(PhaseRunning, PhasePaused)
}

// Resume moves Paused to Running
func (gs *GameState) Resume() bool {
	return gs.transition(PhasePaused, PhaseRunning)
}

// End moves Running to Ended
func (gs *GameState) End() bool {
	return gs.transition(PhaseRunning, PhaseEnded)
}

func (gs *GameState) transition(from, to GamePhase) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.phase != from {
		return false
	}
	gs.phase = to
	return true
}

func (gs *GameState) set(p GamePhase) {
	gs.mu.Lock()
	gs.phase = p
	gs.mu.Unlock()
}
