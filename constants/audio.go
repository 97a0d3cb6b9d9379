package constants

import "time"

// Audio Defaults
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is the master volume in [0, 1]
	DefaultMasterVolume = 0.5
)

// Gem Sound Timing
const (
	GemSoundBaseFreq    = 880.0
	GemSoundFreqPerMult = 12.0
	GemSoundDuration    = 60 * time.Millisecond
	GemSoundAttack      = 5 * time.Millisecond
	GemSoundRelease     = 40 * time.Millisecond
)

// Power-up Sound Timing
const (
	PowerUpSoundFreq     = 520.0
	PowerUpSoundDuration = 80 * time.Millisecond
	PowerUpSoundAttack   = 5 * time.Millisecond
	PowerUpSoundRelease  = 50 * time.Millisecond
)

// Shield Hit Sound Timing
const (
	ShieldSoundFreq     = 330.0
	ShieldSoundDuration = 120 * time.Millisecond
	ShieldSoundAttack   = 5 * time.Millisecond
	ShieldSoundRelease  = 80 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundFreq     = 160.0
	GameOverSoundDuration = 300 * time.Millisecond
	GameOverSoundAttack   = 5 * time.Millisecond
	GameOverSoundRelease  = 200 * time.Millisecond
)
