package constants

import "time"

// Movement Pacing
const (
	// BaseMoveDelay is the time between committed grid steps with no speed effect
	BaseMoveDelay = 120 * time.Millisecond

	// BoltDelayFactor scales the move delay while bolt is active
	BoltDelayFactor = 0.8

	// SnowDelayFactor scales the move delay while snow is active
	SnowDelayFactor = 1.6
)

// Scoring
const (
	// GemBasePoints is the base award for one gem before multipliers
	GemBasePoints = 10

	// ComboWindow is the combo timer value after each gem
	ComboWindow = 3500 * time.Millisecond

	// ComboBonusPerMultiplier is the bonus fraction per numeric multiplier point while the combo is open
	ComboBonusPerMultiplier = 0.25

	// MinMultiplier and MaxMultiplier bound the numeric multiplier
	MinMultiplier = 1
	MaxMultiplier = 20

	// StarScoreFactor doubles scoring while star is active
	StarScoreFactor = 2
)

// Item Pool
const (
	// MinLiveItems is the threshold below which one item spawns per tick
	MinLiveItems = 4

	// GemSpawnChance is the probability a spawned item is a gem
	GemSpawnChance = 0.7

	// ExtraSpawnChance is the probability of an extra spawn after any consumption
	ExtraSpawnChance = 0.6

	// SpawnMaxAttempts is the random probing budget for a free spawn cell
	SpawnMaxAttempts = 200

	// Fallback spawn cell when probing finds nothing
	SpawnFallbackX = 0
	SpawnFallbackY = 0
)

// Item time-to-live ranges (inclusive)
const (
	GemMinTTL     = 8000 * time.Millisecond
	GemMaxTTL     = 16000 * time.Millisecond
	PowerUpMinTTL = 9000 * time.Millisecond
	PowerUpMaxTTL = 15000 * time.Millisecond
)

// Power-up durations
const (
	StarDuration   = 10 * time.Second
	BoltDuration   = 8 * time.Second
	SnowDuration   = 5 * time.Second
	MagnetDuration = 8 * time.Second
	ShieldDuration = 10 * time.Second

	// MaxShieldCharges caps accumulated shield charges
	MaxShieldCharges = 3
)

// Magnet
const (
	// MagnetRadius is the exclusive toroidal distance within which gems are pulled
	MagnetRadius = 6.0

	// MagnetPullChance is the per-axis per-tick nudge probability
	MagnetPullChance = 0.06
)

// Feedback magnitudes and burst sizes
const (
	ShakeGem       = 4.0
	ShakeShieldHit = 8.0
	ShakeGameOver  = 16.0

	BurstGem     = 24
	BurstPowerUp = 36
	BurstShield  = 18
	BurstCrash   = 30
)
