package components

import (
	"time"

	"github.com/google/uuid"
)

// ItemKind identifies a collectible type
type ItemKind uint8

const (
	KindGem ItemKind = iota
	KindStar
	KindBolt
	KindSnow
	KindMagnet
	KindShield
)

// PowerUpKinds lists every non-gem kind in spawn selection order
var PowerUpKinds = [...]ItemKind{KindStar, KindBolt, KindSnow, KindMagnet, KindShield}

// IsPowerUp reports whether the kind produces an active effect
func (k ItemKind) IsPowerUp() bool {
	return k != KindGem
}

func (k ItemKind) String() string {
	switch k {
	case KindGem:
		return "gem"
	case KindStar:
		return "star"
	case KindBolt:
		return "bolt"
	case KindSnow:
		return "snow"
	case KindMagnet:
		return "magnet"
	case KindShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Item is a live collectible on the board
// SpawnedAt is run time, TTL counts from it
type Item struct {
	ID        uuid.UUID
	Kind      ItemKind
	Pos       Point
	SpawnedAt time.Duration
	TTL       time.Duration
}

// Expired reports whether the item's age has reached its time-to-live
func (it Item) Expired(now time.Duration) bool {
	return now-it.SpawnedAt >= it.TTL
}
