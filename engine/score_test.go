package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/snakefx/constants"
)

func TestGemPoints(t *testing.T) {
	tests := []struct {
		name       string
		multiplier int
		combo      time.Duration
		scoreMult  int
		want       int
	}{
		{"first gem", 1, 0, 1, 10},
		{"open combo", 3, time.Second, 3, 52},
		{"closed combo", 3, 0, 3, 30},
		{"star doubled", 1, 0, 2, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScoreState{Multiplier: tt.multiplier, Combo: tt.combo}
			if got := s.GemPoints(tt.scoreMult); got != tt.want {
				t.Errorf("Expected %d points, got %d", tt.want, got)
			}
		})
	}
}

func TestAwardGemOpensComboAndBumpsMultiplier(t *testing.T) {
	s := NewScoreState(0)
	points := s.AwardGem(1)

	if points != 10 || s.Score != 10 {
		t.Errorf("Expected 10 points, got %d (score %d)", points, s.Score)
	}
	if s.Combo != constants.ComboWindow {
		t.Errorf("Expected combo %v, got %v", constants.ComboWindow, s.Combo)
	}
	if s.Multiplier != 2 {
		t.Errorf("Expected multiplier 2, got %d", s.Multiplier)
	}
}

func TestMultiplierCaps(t *testing.T) {
	s := NewScoreState(0)
	for i := 0; i < 40; i++ {
		s.AwardGem(1)
	}
	if s.Multiplier != constants.MaxMultiplier {
		t.Errorf("Expected multiplier capped at %d, got %d", constants.MaxMultiplier, s.Multiplier)
	}
}

func TestComboDecayKeepsMultiplier(t *testing.T) {
	s := NewScoreState(0)
	s.AwardGem(1)
	s.AwardGem(1)

	s.DecayCombo(constants.ComboWindow - time.Millisecond)
	if s.Multiplier != 3 {
		t.Errorf("Expected multiplier kept while combo open, got %d", s.Multiplier)
	}

	s.DecayCombo(10 * time.Millisecond)
	if s.Combo != 0 {
		t.Errorf("Expected combo floored at 0, got %v", s.Combo)
	}
	if s.Multiplier != 3 {
		t.Errorf("Expected multiplier kept after combo closed, got %d", s.Multiplier)
	}
	if got := s.GemPoints(s.Multiplier); got != 30 {
		t.Errorf("Expected no combo bonus once closed (30), got %d", got)
	}
}

func TestRaiseHighScore(t *testing.T) {
	s := NewScoreState(50)
	s.Score = 40
	if s.RaiseHighScore() {
		t.Error("Expected no raise below high score")
	}
	s.Score = 60
	if !s.RaiseHighScore() || s.HighScore != 60 {
		t.Errorf("Expected high score 60, got %d", s.HighScore)
	}
}
