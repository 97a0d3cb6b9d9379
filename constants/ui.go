package constants

import "time"

// HUD Layout
const (
	// HUDTopRows is the number of rows above the board (score line)
	HUDTopRows = 1

	// HUDBottomRows is the number of rows below the board (combo bar, key help)
	HUDBottomRows = 2

	// CellWidth is the number of terminal columns per board cell
	CellWidth = 2

	// ComboBarFraction is the share of board width used by the combo bar
	ComboBarFraction = 0.6
)

// Particles and Shake (presentation only)
const (
	// MaxParticles bounds the live particle list
	MaxParticles = 600

	// ParticleMinLife and ParticleMaxLife bound one particle's lifetime
	ParticleMinLife = 400 * time.Millisecond
	ParticleMaxLife = 900 * time.Millisecond

	// ParticleMinSpeed and ParticleMaxSpeed are in cells per second
	ParticleMinSpeed = 1.5
	ParticleMaxSpeed = 6.5

	// ParticleDrag is the per-frame velocity retention at 120 Hz
	ParticleDrag = 0.98

	// ShakeDecayPerFrame is subtracted from the shake magnitude each frame
	ShakeDecayPerFrame = 0.9

	// ShakeCellsPerUnit converts shake magnitude to terminal cell offset
	ShakeCellsPerUnit = 0.125
)
