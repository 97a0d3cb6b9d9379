package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/snakefx/components"
	"github.com/lixenwraith/snakefx/constants"
	"github.com/lixenwraith/snakefx/engine"
	"github.com/lixenwraith/snakefx/status"
)

func TestSpawnTopsUpOnePerTick(t *testing.T) {
	w := engine.NewTestWorld(28, 20, engine.NewRandom(3))
	w.AddSystem(NewSpawnSystem())

	for i := 1; i <= constants.MinLiveItems; i++ {
		w.Step(16 * time.Millisecond)
		if w.Items.Len() != i {
			t.Fatalf("Expected %d items after tick %d, got %d", i, i, w.Items.Len())
		}
	}

	w.Step(16 * time.Millisecond)
	if w.Items.Len() != constants.MinLiveItems {
		t.Errorf("Expected spawning to stop at %d, got %d", constants.MinLiveItems, w.Items.Len())
	}
	for _, it := range w.Items.Items() {
		if w.Snake.Contains(it.Pos) {
			t.Errorf("Expected spawn off the snake, got %v", it.Pos)
		}
	}
}

func TestExpiryRemovesAgedItems(t *testing.T) {
	w := engine.NewTestWorld(28, 20, nil)
	w.AddSystem(NewExpirySystem())
	w.Items.Add(components.Item{Kind: components.KindGem, Pos: components.Point{X: 1, Y: 1}, SpawnedAt: 0, TTL: 8000 * time.Millisecond})

	w.Step(7999 * time.Millisecond)
	if w.Items.Len() != 1 {
		t.Fatalf("Expected gem present at 7999ms, got %d items", w.Items.Len())
	}

	w.Step(2 * time.Millisecond)
	if w.Items.Len() != 0 {
		t.Errorf("Expected gem gone at 8001ms, got %d items", w.Items.Len())
	}
	if got := w.Stats.Value(status.ItemsExpired); got != 1 {
		t.Errorf("Expected 1 expired item counted, got %d", got)
	}
}

func TestComboWindowCloses(t *testing.T) {
	w := engine.NewTestWorld(28, 20, nil)
	w.AddSystem(NewComboSystem())
	w.Score.AwardGem(1)
	w.Score.AwardGem(1)

	w.Step(3 * time.Second)
	if w.Score.Multiplier != 3 {
		t.Errorf("Expected multiplier 3 while combo open, got %d", w.Score.Multiplier)
	}

	w.Step(600 * time.Millisecond)
	if w.Score.Multiplier != 3 || w.Score.Combo != 0 {
		t.Errorf("Expected combo closed with multiplier kept, got multiplier %d combo %v", w.Score.Multiplier, w.Score.Combo)
	}
}

func TestEffectSystemDerivesFlags(t *testing.T) {
	w := engine.NewTestWorld(28, 20, nil)
	w.AddSystem(NewEffectSystem())
	w.Effects.Apply(components.KindStar, 0)
	w.Effects.Apply(components.KindSnow, 0)
	w.Score.Multiplier = 3

	w.Step(16 * time.Millisecond)
	if w.ScoreMultiplier != 6 {
		t.Errorf("Expected score multiplier 6, got %d", w.ScoreMultiplier)
	}
	if w.Flags.MoveDelay != 192*time.Millisecond {
		t.Errorf("Expected snow move delay 192ms, got %v", w.Flags.MoveDelay)
	}

	w.Step(constants.SnowDuration)
	if w.Flags.Snow {
		t.Error("Expected snow expired")
	}
	if w.Flags.MoveDelay != constants.BaseMoveDelay {
		t.Errorf("Expected base move delay after expiry, got %v", w.Flags.MoveDelay)
	}
}

func TestAllSystemsInStepOrder(t *testing.T) {
	w := engine.NewTestWorld(28, 20, nil)
	Install(w)

	want := []int{
		constants.PriorityCombo,
		constants.PriorityEffect,
		constants.PriorityMagnet,
		constants.PriorityExpiry,
		constants.PrioritySpawn,
		constants.PriorityMovement,
	}
	got := w.Systems()
	if len(got) != len(want) {
		t.Fatalf("Expected %d systems, got %d", len(want), len(got))
	}
	for i, p := range want {
		if got[i].Priority() != p {
			t.Errorf("Expected system %d priority %d, got %d", i, p, got[i].Priority())
		}
	}
}
