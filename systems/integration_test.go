package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/snakefx/components"
	"github.com/lixenwraith/snakefx/constants"
	"github.com/lixenwraith/snakefx/engine"
)

// Three gems in a row: combo multiplier climbs and the third pickup gets the combo bonus
func TestGemChainScoring(t *testing.T) {
	w := engine.NewTestWorld(28, 20, nil)
	Install(w)

	head := w.Snake.Head()
	for i := 1; i <= 3; i++ {
		engine.PlaceItem(w, components.KindGem, components.Point{X: head.X + i, Y: head.Y})
	}
	// Filler keeps the spawn system idle for the first tick
	engine.PlaceItem(w, components.KindGem, components.Point{X: 0, Y: 0})

	wantScores := []int{10, 40, 92}
	wantMults := []int{2, 3, 4}

	for i := 0; i < 3; i++ {
		w.Step(constants.BaseMoveDelay)

		if w.Score.Score != wantScores[i] {
			t.Errorf("Pickup %d: expected score %d, got %d", i+1, wantScores[i], w.Score.Score)
		}
		if w.Score.Multiplier != wantMults[i] {
			t.Errorf("Pickup %d: expected multiplier %d, got %d", i+1, wantMults[i], w.Score.Multiplier)
		}
	}

	if w.Snake.Len() != constants.InitialSnakeLength+3 {
		t.Errorf("Expected length %d, got %d", constants.InitialSnakeLength+3, w.Snake.Len())
	}
	if w.Snake.Head() != (components.Point{X: head.X + 3, Y: head.Y}) {
		t.Errorf("Expected head at %v, got %v", components.Point{X: head.X + 3, Y: head.Y}, w.Snake.Head())
	}
	if w.Score.HighScore != 92 {
		t.Errorf("Expected high score 92, got %d", w.Score.HighScore)
	}
}

func TestStarDoublesGemPoints(t *testing.T) {
	w := engine.NewTestWorld(28, 20, nil)
	Install(w)
	head := w.Snake.Head()
	engine.PlaceItem(w, components.KindStar, components.Point{X: head.X + 1, Y: head.Y})
	engine.PlaceItem(w, components.KindGem, components.Point{X: head.X + 2, Y: head.Y})

	w.Step(constants.BaseMoveDelay)
	w.Step(constants.BaseMoveDelay)

	if w.Score.Score != 20 {
		t.Errorf("Expected 20 points under star, got %d", w.Score.Score)
	}
}

func TestBoltSpeedsUpMovement(t *testing.T) {
	w := engine.NewTestWorld(28, 20, nil)
	Install(w)
	head := w.Snake.Head()
	engine.PlaceItem(w, components.KindBolt, components.Point{X: head.X + 1, Y: head.Y})

	w.Step(constants.BaseMoveDelay)
	// 96ms is enough once bolt is active
	w.Step(96 * time.Millisecond)

	if w.Snake.Head() != (components.Point{X: head.X + 2, Y: head.Y}) {
		t.Errorf("Expected two steps under bolt, head at %v", w.Snake.Head())
	}
}
