package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/snakefx/constants"
)

// ScoreState tracks score, high score, numeric multiplier and combo timer
type ScoreState struct {
	Score      int
	HighScore  int
	Multiplier int
	Combo      time.Duration
}

// NewScoreState returns a fresh run score keeping the given high score
func NewScoreState(high int) ScoreState {
	return ScoreState{
		HighScore:  high,
		Multiplier: constants.MinMultiplier,
	}
}

// ComboActive reports whether the combo timer is still open
func (s *ScoreState) ComboActive() bool {
	return s.Combo > 0
}

// DecayCombo counts the combo timer down, floored at zero
// The multiplier is untouched; only a run reset returns it to 1
func (s *ScoreState) DecayCombo(dt time.Duration) {
	s.Combo = max(0, s.Combo-dt)
}

// GemPoints computes the award for one gem under the combined score multiplier
func (s *ScoreState) GemPoints(scoreMultiplier int) int {
	bonus := 0.0
	if s.ComboActive() {
		bonus = constants.ComboBonusPerMultiplier * float64(s.Multiplier)
	}
	return int(math.Floor(constants.GemBasePoints * float64(scoreMultiplier) * (1 + bonus)))
}

// AwardGem scores a gem, reopens the combo and bumps the multiplier
func (s *ScoreState) AwardGem(scoreMultiplier int) int {
	points := s.GemPoints(scoreMultiplier)
	s.Score += points
	s.Combo = constants.ComboWindow
	s.Multiplier = clamp(s.Multiplier+1, constants.MinMultiplier, constants.MaxMultiplier)
	return points
}

// RaiseHighScore lifts the high score to the current score and reports a change
func (s *ScoreState) RaiseHighScore() bool {
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}

// ComboFraction is the remaining combo window in [0,1]
func (s *ScoreState) ComboFraction() float64 {
	return clamp(float64(s.Combo)/float64(constants.ComboWindow), 0, 1)
}
