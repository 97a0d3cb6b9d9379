package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/snakefx/components"
	"github.com/lixenwraith/snakefx/constants"
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// GemFrequency is the gem pickup pitch for a multiplier
func GemFrequency(multiplier int) float64 {
	return constants.GemSoundBaseFreq + constants.GemSoundFreqPerMult*float64(max(multiplier, 1))
}

// toneSpec describes one enveloped oscillator voice
type toneSpec struct {
	freq     float64
	duration time.Duration
	attack   time.Duration
	release  time.Duration
	wave     WaveType
}

func tone(ts toneSpec, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(ts.freq, ts.duration, ts.wave, rate)
	return NewEnvelope(osc, ts.duration, ts.attack, ts.release, rate)
}

// CreateGemSound generates a triangle blip pitched up by the multiplier
func CreateGemSound(cfg *AudioConfig, multiplier int) beep.Streamer {
	s := tone(toneSpec{
		freq:     GemFrequency(multiplier),
		duration: constants.GemSoundDuration,
		attack:   constants.GemSoundAttack,
		release:  constants.GemSoundRelease,
		wave:     WaveTriangle,
	}, beep.SampleRate(cfg.SampleRate))
	return newVolume(s, cfg.volumeFor(components.SoundGem))
}

// CreatePowerUpSound generates a short sawtooth chirp
func CreatePowerUpSound(cfg *AudioConfig) beep.Streamer {
	s := tone(toneSpec{
		freq:     constants.PowerUpSoundFreq,
		duration: constants.PowerUpSoundDuration,
		attack:   constants.PowerUpSoundAttack,
		release:  constants.PowerUpSoundRelease,
		wave:     WaveSaw,
	}, beep.SampleRate(cfg.SampleRate))
	return newVolume(s, cfg.volumeFor(components.SoundPowerUp))
}

// CreateShieldHitSound generates a sine thud with an octave overtone
func CreateShieldHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	fund := toneSpec{
		freq:     constants.ShieldSoundFreq,
		duration: constants.ShieldSoundDuration,
		attack:   constants.ShieldSoundAttack,
		release:  constants.ShieldSoundRelease,
		wave:     WaveSine,
	}
	over := fund
	over.freq *= 2
	over.release /= 2

	mixed := beep.Mix(
		newVolume(tone(fund, rate), 0.7),
		newVolume(tone(over, rate), 0.3),
	)
	return newVolume(mixed, cfg.volumeFor(components.SoundShieldHit))
}

// CreateGameOverSound generates a low square buzz
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	s := tone(toneSpec{
		freq:     constants.GameOverSoundFreq,
		duration: constants.GameOverSoundDuration,
		attack:   constants.GameOverSoundAttack,
		release:  constants.GameOverSoundRelease,
		wave:     WaveSquare,
	}, beep.SampleRate(cfg.SampleRate))
	return newVolume(s, cfg.volumeFor(components.SoundGameOver))
}

// GetSoundEffect returns the streamer for a cue, nil for unknown types
func GetSoundEffect(cue components.SoundCue, cfg *AudioConfig) beep.Streamer {
	switch cue.Type {
	case components.SoundGem:
		return CreateGemSound(cfg, cue.Multiplier)
	case components.SoundPowerUp:
		return CreatePowerUpSound(cfg)
	case components.SoundShieldHit:
		return CreateShieldHitSound(cfg)
	case components.SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
