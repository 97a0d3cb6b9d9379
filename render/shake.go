package render

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/snakefx/constants"
)

// Shake is the decaying screen-shake magnitude
type Shake struct {
	magnitude float64
	rng       *rand.Rand
}

// NewShake creates a still shake with its own random source
func NewShake(seed int64) *Shake {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Shake{rng: rand.New(rand.NewSource(seed))}
}

// Add raises the magnitude to at least m
func (s *Shake) Add(m float64) {
	s.magnitude = max(s.magnitude, m)
}

// Magnitude returns the current magnitude
func (s *Shake) Magnitude() float64 {
	return s.magnitude
}

// Update decays the magnitude at ShakeDecayPerFrame per 1/120 s
func (s *Shake) Update(dt time.Duration) {
	s.magnitude = max(0, s.magnitude-constants.ShakeDecayPerFrame*dt.Seconds()*120)
}

// Offset returns a random board offset in cells for this frame
func (s *Shake) Offset() (dx, dy int) {
	if s.magnitude <= 0 {
		return 0, 0
	}
	span := s.magnitude * constants.ShakeCellsPerUnit
	dx = int((s.rng.Float64() - 0.5) * span * constants.CellWidth)
	dy = int((s.rng.Float64() - 0.5) * span)
	return dx, dy
}
