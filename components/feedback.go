package components

// BurstCategory selects particle color for a burst
type BurstCategory uint8

const (
	BurstGem BurstCategory = iota
	BurstStar
	BurstBolt
	BurstSnow
	BurstMagnet
	BurstShield
	BurstCrash
)

// BurstForKind maps an item kind to its burst category
func BurstForKind(k ItemKind) BurstCategory {
	switch k {
	case KindStar:
		return BurstStar
	case KindBolt:
		return BurstBolt
	case KindSnow:
		return BurstSnow
	case KindMagnet:
		return BurstMagnet
	case KindShield:
		return BurstShield
	default:
		return BurstGem
	}
}

// BurstRequest asks presentation for a particle burst at a board cell
type BurstRequest struct {
	Pos      Point
	Category BurstCategory
	Count    int
}

// SoundCue identifies a fire-and-forget sound
type SoundCue struct {
	Type       SoundType
	Multiplier int // Gem pitch offset
}

// SoundType represents different sound effects
type SoundType uint8

const (
	SoundGem SoundType = iota
	SoundPowerUp
	SoundShieldHit
	SoundGameOver
	SoundTypeCount
)
