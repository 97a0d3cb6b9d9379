package engine

import (
	"github.com/lixenwraith/snakefx/components"
)

// FeedbackBatch is everything the simulation asked presentation for since the last drain
type FeedbackBatch struct {
	Bursts []components.BurstRequest
	Shake  float64 // Strongest shake requested, 0 when none
	Cues   []components.SoundCue
}

// Empty reports whether the batch carries nothing
func (b FeedbackBatch) Empty() bool {
	return len(b.Bursts) == 0 && len(b.Cues) == 0 && b.Shake == 0
}

// Feedback queues fire-and-forget presentation requests produced by systems
// Nothing in here is ever read back by gameplay
type Feedback struct {
	bursts []components.BurstRequest
	shake  float64
	cues   []components.SoundCue
}

// NewFeedback creates an empty queue
func NewFeedback() *Feedback {
	return &Feedback{}
}

// Burst requests a particle burst at a board cell
func (f *Feedback) Burst(pos components.Point, category components.BurstCategory, count int) {
	f.bursts = append(f.bursts, components.BurstRequest{Pos: pos, Category: category, Count: count})
}

// Shake raises the pending shake to at least magnitude
func (f *Feedback) Shake(magnitude float64) {
	f.shake = max(f.shake, magnitude)
}

// Cue requests a sound
func (f *Feedback) Cue(cue components.SoundCue) {
	f.cues = append(f.cues, cue)
}

// PendingShake returns the shake magnitude not yet drained
func (f *Feedback) PendingShake() float64 {
	return f.shake
}

// Drain returns and clears everything queued
func (f *Feedback) Drain() FeedbackBatch {
	b := FeedbackBatch{
		Bursts: f.bursts,
		Shake:  f.shake,
		Cues:   f.cues,
	}
	f.bursts = nil
	f.cues = nil
	f.shake = 0
	return b
}

// Clear drops everything queued
func (f *Feedback) Clear() {
	f.Drain()
}
