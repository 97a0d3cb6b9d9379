package audio

import "github.com/gopxl/beep"

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Player is the playback surface the sound manager feeds
type Player interface {
	Play(s beep.Streamer)
}
