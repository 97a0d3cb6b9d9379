package engine

import (
	"slices"
	"time"

	"github.com/lixenwraith/snakefx/components"
	"github.com/lixenwraith/snakefx/constants"
)

// EffectFlags is the per-tick view of active effects consumed by later systems
type EffectFlags struct {
	Star          bool
	Bolt          bool
	Snow          bool
	Magnet        bool
	ShieldPass    bool
	ShieldCharges int

	ScoreFactor int           // StarScoreFactor while star is active, else 1
	SpeedFactor float64       // Composed move delay factor
	MoveDelay   time.Duration // BaseMoveDelay scaled by SpeedFactor
}

// ScoreMultiplier combines the star factor with the numeric multiplier
func (f EffectFlags) ScoreMultiplier(multiplier int) int {
	factor := f.ScoreFactor
	if factor < 1 {
		factor = 1
	}
	return factor * max(constants.MinMultiplier, multiplier)
}

// BaseFlags is the flag set with no active effect
func BaseFlags() EffectFlags {
	return EffectFlags{
		ScoreFactor: 1,
		SpeedFactor: 1,
		MoveDelay:   constants.BaseMoveDelay,
	}
}

// EffectSet holds at most one active effect per power-up kind
type EffectSet struct {
	active map[components.ItemKind]components.ActiveEffect
}

// NewEffectSet creates an empty effect set
func NewEffectSet() *EffectSet {
	return &EffectSet{active: make(map[components.ItemKind]components.ActiveEffect)}
}

// EffectDuration returns the activation length for a power-up kind
func EffectDuration(kind components.ItemKind) time.Duration {
	switch kind {
	case components.KindStar:
		return constants.StarDuration
	case components.KindBolt:
		return constants.BoltDuration
	case components.KindSnow:
		return constants.SnowDuration
	case components.KindMagnet:
		return constants.MagnetDuration
	case components.KindShield:
		return constants.ShieldDuration
	default:
		return 0
	}
}

// Apply activates or refreshes the effect for kind
// Shield also gains one charge up to MaxShieldCharges
func (s *EffectSet) Apply(kind components.ItemKind, now time.Duration) bool {
	if !kind.IsPowerUp() {
		return false
	}
	e := s.active[kind]
	e.Kind = kind
	e.ExpiresAt = now + EffectDuration(kind)
	if kind == components.KindShield {
		e.Charges = clamp(e.Charges+1, 1, constants.MaxShieldCharges)
	}
	s.active[kind] = e
	return true
}

// Tick prunes expired or spent effects and derives this tick's flags
func (s *EffectSet) Tick(now time.Duration) EffectFlags {
	for kind, e := range s.active {
		if e.ExpiresAt <= now || (kind == components.KindShield && e.Charges <= 0) {
			delete(s.active, kind)
		}
	}
	return s.Flags()
}

// Flags derives flags from the current set without pruning
func (s *EffectSet) Flags() EffectFlags {
	f := BaseFlags()
	_, f.Star = s.active[components.KindStar]
	_, f.Bolt = s.active[components.KindBolt]
	_, f.Snow = s.active[components.KindSnow]
	_, f.Magnet = s.active[components.KindMagnet]
	if shield, ok := s.active[components.KindShield]; ok && shield.Charges > 0 {
		f.ShieldPass = true
		f.ShieldCharges = shield.Charges
	}

	if f.Star {
		f.ScoreFactor = constants.StarScoreFactor
	}
	if f.Bolt {
		f.SpeedFactor *= constants.BoltDelayFactor
	}
	if f.Snow {
		f.SpeedFactor *= constants.SnowDelayFactor
	}
	f.MoveDelay = time.Duration(float64(constants.BaseMoveDelay) * f.SpeedFactor)
	return f
}

// ConsumeShield spends one shield charge, removing the shield at zero
func (s *EffectSet) ConsumeShield() bool {
	e, ok := s.active[components.KindShield]
	if !ok || e.Charges <= 0 {
		return false
	}
	e.Charges--
	if e.Charges == 0 {
		delete(s.active, components.KindShield)
	} else {
		s.active[components.KindShield] = e
	}
	return true
}

// Get returns the active effect for kind
func (s *EffectSet) Get(kind components.ItemKind) (components.ActiveEffect, bool) {
	e, ok := s.active[kind]
	return e, ok
}

// Active returns the active effects ordered by kind
func (s *EffectSet) Active() []components.ActiveEffect {
	out := make([]components.ActiveEffect, 0, len(s.active))
	for _, e := range s.active {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b components.ActiveEffect) int {
		return int(a.Kind) - int(b.Kind)
	})
	return out
}

// Len returns the number of active effects
func (s *EffectSet) Len() int {
	return len(s.active)
}

// Clear removes every effect
func (s *EffectSet) Clear() {
	clear(s.active)
}
