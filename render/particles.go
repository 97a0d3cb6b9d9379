package render

import (
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakefx/components"
	"github.com/lixenwraith/snakefx/constants"
)

// Particle is one cosmetic spark in board cell units
type Particle struct {
	X, Y    float64
	VX, VY  float64 // Cells per second
	Life    time.Duration
	MaxLife time.Duration
	Color   tcell.Color
}

// ParticleSystem owns cosmetic particles; its randomness never touches gameplay
type ParticleSystem struct {
	particles []Particle
	rng       *rand.Rand
}

// NewParticleSystem creates an empty system with its own random source
func NewParticleSystem(seed int64) *ParticleSystem {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &ParticleSystem{
		particles: make([]Particle, 0, constants.MaxParticles),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Burst emits Count particles radiating from the request's cell center
func (ps *ParticleSystem) Burst(req components.BurstRequest) {
	color := ColorForBurst(req.Category)
	cx := float64(req.Pos.X) + 0.5
	cy := float64(req.Pos.Y) + 0.5

	for i := 0; i < req.Count; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := constants.ParticleMinSpeed + ps.rng.Float64()*(constants.ParticleMaxSpeed-constants.ParticleMinSpeed)
		life := constants.ParticleMinLife + time.Duration(ps.rng.Int63n(int64(constants.ParticleMaxLife-constants.ParticleMinLife)))
		ps.particles = append(ps.particles, Particle{
			X:       cx,
			Y:       cy,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
			Color:   color,
		})
	}

	// Oldest go first when over budget
	if over := len(ps.particles) - constants.MaxParticles; over > 0 {
		ps.particles = append(ps.particles[:0], ps.particles[over:]...)
	}
}

// Update ages, moves and drags particles, dropping dead ones
func (ps *ParticleSystem) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	secs := dt.Seconds()
	drag := math.Pow(constants.ParticleDrag, secs*120)

	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX * secs
		p.Y += p.VY * secs
		p.VX *= drag
		p.VY *= drag
		alive = append(alive, p)
	}
	ps.particles = alive
}

// Particles returns the live particles
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Len returns the live particle count
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Clear drops every particle
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}
