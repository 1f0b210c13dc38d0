package effects

import (
	"image/color"

	"github.com/ha2san/void-survivor/game"
)

// Particle is a short-lived cosmetic dot
type Particle struct {
	Pos     game.Vec2
	Vel     game.Vec2
	Life    float64 // seconds left
	MaxLife float64 // seconds at spawn
	Color   color.RGBA
	Size    float64
}

// Alive reports whether the particle still has time left
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Alpha returns the remaining share of the particle's life, for fading
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return p.Life / p.MaxLife
}

// Banner is a centred message shown for a short time, e.g. on wave change
type Banner struct {
	Text string
	Life float64
}

const (
	defaultMaxParticles = 2000
	bannerLife          = 2.0
)

// System turns simulation events into particles and ages them
type System struct {
	particles    []Particle
	maxParticles int
	rng          game.Rand
	banner       Banner
	flash        float64 // red screen flash after game over, 1 to 0
}

// NewSystem creates an empty particle system
func NewSystem(rng game.Rand) *System {
	return &System{
		particles:    make([]Particle, 0, 512),
		maxParticles: defaultMaxParticles,
		rng:          rng,
	}
}

// Particles returns the live particles
func (s *System) Particles() []Particle {
	return s.particles
}

// Banner returns the current banner; Life is zero when none is showing
func (s *System) Banner() Banner {
	return s.banner
}

// Flash returns the current game-over flash intensity in [0, 1]
func (s *System) Flash() float64 {
	return s.flash
}

// Clear drops every particle, the banner and the flash
func (s *System) Clear() {
	s.particles = s.particles[:0]
	s.banner = Banner{}
	s.flash = 0
}

// Update integrates and ages particles, dropping expired ones
func (s *System) Update(dt float64) {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
		p.Life -= dt
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	s.particles = alive

	if s.banner.Life > 0 {
		s.banner.Life -= dt
		if s.banner.Life < 0 {
			s.banner.Life = 0
		}
	}
	if s.flash > 0 {
		s.flash -= dt
		if s.flash < 0 {
			s.flash = 0
		}
	}
}

// ShakeOffset samples a camera offset for the current shake amount
func (s *System) ShakeOffset(shake game.ScreenShake) game.Vec2 {
	if shake.Amount <= 0 {
		return game.Vec2{}
	}
	return game.V(s.uniform(-shake.Amount, shake.Amount), s.uniform(-shake.Amount, shake.Amount))
}

func (s *System) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *System) jitter(spread float64) game.Vec2 {
	return game.V(s.uniform(-spread, spread), s.uniform(-spread, spread))
}

func (s *System) emit(p Particle) {
	if len(s.particles) >= s.maxParticles {
		return
	}
	p.MaxLife = p.Life
	s.particles = append(s.particles, p)
}
