package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single step delta so a stalled terminal does not
	// dump seconds of game time into one frame
	MaxFrameDelta = 250 * time.Millisecond
)

// Board Defaults
const (
	// DefaultGridWidth is the default board width in cells
	DefaultGridWidth = 28

	// DefaultGridHeight is the default board height in cells
	DefaultGridHeight = 20

	// MinGridWidth and MinGridHeight bound the smallest playable board
	MinGridWidth  = 8
	MinGridHeight = 5

	// InitialSnakeLength is the body length of a fresh run
	InitialSnakeLength = 3
)

// System Execution Priorities (lower runs first)
// Order matches the simulation step contract and must not be reshuffled
const (
	PriorityCombo    = 5
	PriorityEffect   = 10
	PriorityMagnet   = 15
	PriorityExpiry   = 20
	PrioritySpawn    = 25
	PriorityMovement = 30
)
