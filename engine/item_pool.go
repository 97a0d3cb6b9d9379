package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/snakefx/components"
	"github.com/lixenwraith/snakefx/constants"
)

// ItemPool holds every live collectible on the board in spawn order
type ItemPool struct {
	items []components.Item
}

// NewItemPool creates an empty pool
func NewItemPool() *ItemPool {
	return &ItemPool{items: make([]components.Item, 0, 16)}
}

// Len returns the number of live items
func (p *ItemPool) Len() int {
	return len(p.items)
}

// Items returns a copy of the live items
func (p *ItemPool) Items() []components.Item {
	out := make([]components.Item, len(p.items))
	copy(out, p.items)
	return out
}

// Add inserts an item, assigning an ID when missing
func (p *ItemPool) Add(it components.Item) components.Item {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	p.items = append(p.items, it)
	return it
}

// At returns the first item occupying pos
func (p *ItemPool) At(pos components.Point) (components.Item, bool) {
	for _, it := range p.items {
		if it.Pos == pos {
			return it, true
		}
	}
	return components.Item{}, false
}

// Take removes and returns the first item occupying pos
func (p *ItemPool) Take(pos components.Point) (components.Item, bool) {
	for i, it := range p.items {
		if it.Pos == pos {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return it, true
		}
	}
	return components.Item{}, false
}

// Expire removes every item whose age has reached its TTL and returns them
func (p *ItemPool) Expire(now time.Duration) []components.Item {
	var expired []components.Item
	kept := p.items[:0]
	for _, it := range p.items {
		if it.Expired(now) {
			expired = append(expired, it)
			continue
		}
		kept = append(kept, it)
	}
	p.items = kept
	return expired
}

// ForEach calls fn with a mutable pointer to every live item
func (p *ItemPool) ForEach(fn func(it *components.Item)) {
	for i := range p.items {
		fn(&p.items[i])
	}
}

// Clear removes every item
func (p *ItemPool) Clear() {
	p.items = p.items[:0]
}

// Occupied reports whether any item sits on pos
func (p *ItemPool) Occupied(pos components.Point) bool {
	_, ok := p.At(pos)
	return ok
}

// FreeCell probes random cells for one not covered by the snake or an item
// Falls back to the fixed fallback cell once the attempt budget is spent
func (p *ItemPool) FreeCell(rng Random, grid Grid, snake *Snake) components.Point {
	for i := 0; i < constants.SpawnMaxAttempts; i++ {
		c := components.Point{X: rng.Intn(grid.Width), Y: rng.Intn(grid.Height)}
		if snake != nil && snake.Contains(c) {
			continue
		}
		if p.Occupied(c) {
			continue
		}
		return c
	}
	return components.Point{X: constants.SpawnFallbackX, Y: constants.SpawnFallbackY}
}

// Spawn creates one item at a free cell; forced selects the kind when non-nil
func (p *ItemPool) Spawn(rng Random, grid Grid, snake *Snake, now time.Duration, forced *components.ItemKind) components.Item {
	kind := rollKind(rng)
	if forced != nil {
		kind = *forced
	}
	pos := p.FreeCell(rng, grid, snake)

	var ttl time.Duration
	if kind == components.KindGem {
		ttl = rangeDuration(rng, constants.GemMinTTL, constants.GemMaxTTL)
	} else {
		ttl = rangeDuration(rng, constants.PowerUpMinTTL, constants.PowerUpMaxTTL)
	}

	return p.Add(components.Item{
		Kind:      kind,
		Pos:       pos,
		SpawnedAt: now,
		TTL:       ttl,
	})
}

func rollKind(rng Random) components.ItemKind {
	if rng.Float64() < constants.GemSpawnChance {
		return components.KindGem
	}
	return components.PowerUpKinds[rng.Intn(len(components.PowerUpKinds))]
}
