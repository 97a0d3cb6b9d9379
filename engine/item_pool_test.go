package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/snakefx/components"
	"github.com/lixenwraith/snakefx/constants"
)

func TestItemExpiryBoundary(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Duration
		present bool
	}{
		{"before ttl", 7999 * time.Millisecond, true},
		{"at ttl", 8000 * time.Millisecond, false},
		{"after ttl", 8001 * time.Millisecond, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewItemPool()
			pool.Add(components.Item{Kind: components.KindGem, Pos: components.Point{X: 1, Y: 1}, SpawnedAt: 0, TTL: 8000 * time.Millisecond})

			expired := pool.Expire(tt.now)
			if tt.present && pool.Len() != 1 {
				t.Errorf("Expected item present at %v", tt.now)
			}
			if !tt.present && (pool.Len() != 0 || len(expired) != 1) {
				t.Errorf("Expected item expired at %v, pool=%d expired=%d", tt.now, pool.Len(), len(expired))
			}
		})
	}
}

func TestItemPoolTakeRemovesOnlyThatItem(t *testing.T) {
	pool := NewItemPool()
	a := pool.Add(components.Item{Kind: components.KindGem, Pos: components.Point{X: 1, Y: 1}})
	b := pool.Add(components.Item{Kind: components.KindStar, Pos: components.Point{X: 2, Y: 1}})

	if a.ID == uuid.Nil || b.ID == uuid.Nil || a.ID == b.ID {
		t.Fatalf("Expected distinct item ids, got %v and %v", a.ID, b.ID)
	}

	got, ok := pool.Take(components.Point{X: 2, Y: 1})
	if !ok || got.ID != b.ID {
		t.Fatalf("Expected to take star, got %v ok=%v", got, ok)
	}
	if pool.Len() != 1 {
		t.Errorf("Expected 1 item left, got %d", pool.Len())
	}
	if _, ok := pool.Take(components.Point{X: 2, Y: 1}); ok {
		t.Error("Expected empty cell after take")
	}
}

func TestFreeCellSkipsOccupiedCells(t *testing.T) {
	grid := Grid{Width: 28, Height: 20}
	snake := NewSnake(grid) // (7,10) (8,10) (9,10)
	pool := NewItemPool()
	pool.Add(components.Item{Kind: components.KindGem, Pos: components.Point{X: 1, Y: 2}})

	rng := NewScriptedRandom().QueueInts(8, 10, 1, 2, 3, 4)
	got := pool.FreeCell(rng, grid, snake)

	want := components.Point{X: 3, Y: 4}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestFreeCellFallsBackWhenBoardIsFull(t *testing.T) {
	grid := Grid{Width: 2, Height: 1}
	snake := NewSnake(grid) // covers both cells

	got := NewItemPool().FreeCell(NewScriptedRandom(), grid, snake)

	want := components.Point{X: constants.SpawnFallbackX, Y: constants.SpawnFallbackY}
	if got != want {
		t.Errorf("Expected fallback %v, got %v", want, got)
	}
}

func TestSpawnSelectsKindPositionAndTTL(t *testing.T) {
	grid := Grid{Width: 28, Height: 20}

	t.Run("gem", func(t *testing.T) {
		pool := NewItemPool()
		rng := NewScriptedRandom().QueueFloats(0.69).QueueInts(3, 4, 0)
		it := pool.Spawn(rng, grid, nil, 2*time.Second, nil)

		if it.Kind != components.KindGem {
			t.Errorf("Expected gem, got %v", it.Kind)
		}
		if it.Pos != (components.Point{X: 3, Y: 4}) {
			t.Errorf("Expected (3,4), got %v", it.Pos)
		}
		if it.TTL != constants.GemMinTTL {
			t.Errorf("Expected ttl %v, got %v", constants.GemMinTTL, it.TTL)
		}
		if it.SpawnedAt != 2*time.Second {
			t.Errorf("Expected spawn time 2s, got %v", it.SpawnedAt)
		}
	})

	t.Run("power-up", func(t *testing.T) {
		pool := NewItemPool()
		// kind index 2 is snow, ttl offset is the full span
		rng := NewScriptedRandom().QueueFloats(0.7).QueueInts(2, 5, 6, 6000)
		it := pool.Spawn(rng, grid, nil, 0, nil)

		if it.Kind != components.KindSnow {
			t.Errorf("Expected snow, got %v", it.Kind)
		}
		if it.TTL != constants.PowerUpMaxTTL {
			t.Errorf("Expected ttl %v, got %v", constants.PowerUpMaxTTL, it.TTL)
		}
	})

	t.Run("forced", func(t *testing.T) {
		pool := NewItemPool()
		kind := components.KindGem
		rng := NewScriptedRandom().QueueFloats(0.95)
		it := pool.Spawn(rng, grid, nil, 0, &kind)
		if it.Kind != components.KindGem {
			t.Errorf("Expected forced gem, got %v", it.Kind)
		}
	})
}

func TestSpawnTTLStaysInRange(t *testing.T) {
	grid := Grid{Width: 28, Height: 20}
	rng := NewRandom(42)
	pool := NewItemPool()

	for i := 0; i < 500; i++ {
		it := pool.Spawn(rng, grid, nil, 0, nil)
		lo, hi := constants.PowerUpMinTTL, constants.PowerUpMaxTTL
		if it.Kind == components.KindGem {
			lo, hi = constants.GemMinTTL, constants.GemMaxTTL
		}
		if it.TTL < lo || it.TTL > hi {
			t.Fatalf("Expected %v ttl in [%v,%v], got %v", it.Kind, lo, hi, it.TTL)
		}
		if it.TTL%time.Millisecond != 0 {
			t.Fatalf("Expected whole-millisecond ttl, got %v", it.TTL)
		}
		pool.Clear()
	}
}
