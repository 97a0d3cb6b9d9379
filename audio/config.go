package audio

import (
	"github.com/lixenwraith/snakefx/components"
	"github.com/lixenwraith/snakefx/constants"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[components.SoundType]float64
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[components.SoundType]float64{
			components.SoundGem:       0.5,
			components.SoundPowerUp:   0.6,
			components.SoundShieldHit: 0.7,
			components.SoundGameOver:  0.8,
		},
	}
}

// NewAudioConfig builds a config from runtime settings, clamping volume into range
func NewAudioConfig(enabled bool, volume float64) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = min(max(volume, 0), 1)
	return cfg
}

// volumeFor returns the effective volume for a sound type
func (c *AudioConfig) volumeFor(t components.SoundType) float64 {
	v, ok := c.EffectVolumes[t]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
