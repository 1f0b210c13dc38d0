package effects

import (
	"fmt"

	"github.com/ha2san/void-survivor/game"
)

// Process drains the queue in order and spawns the matching effects
func (s *System) Process(q *game.EventQueue) {
	q.Drain(s.Handle)
}

// Handle spawns the effect for a single event
func (s *System) Handle(e game.Event) {
	switch e.Kind {
	case game.EventExplosion:
		s.explosion(e)
	case game.EventPowerUpSpawn:
		s.sparkle(e)
	case game.EventLaserFired:
		s.laserFlash(e)
	case game.EventMuzzleFlash:
		s.directed(e, 2, 100, 50, 0.2, 1.5)
	case game.EventMissileLaunch:
		s.directed(e, 5, 150, 50, 0.3, 2)
	case game.EventWaveComplete:
		s.banner = Banner{Text: fmt.Sprintf("WAVE %d", e.Wave), Life: bannerLife}
	case game.EventGameOver:
		s.flash = 1
	}
}

func (s *System) explosion(e game.Event) {
	for i := 0; i < e.Count; i++ {
		s.emit(Particle{
			Pos:   e.Pos,
			Vel:   s.jitter(200),
			Life:  s.uniform(0.3, 0.6),
			Color: e.Color,
			Size:  s.uniform(2, 5),
		})
	}
}

func (s *System) sparkle(e game.Event) {
	c := e.Color
	if c.A == 0 {
		c = game.ColorGold
	}
	n := e.Count
	if n == 0 {
		n = 20
	}
	for i := 0; i < n; i++ {
		s.emit(Particle{
			Pos:   e.Pos,
			Vel:   game.V(s.uniform(-50, 50), s.uniform(-100, -50)),
			Life:  1,
			Color: c,
			Size:  3,
		})
	}
}

func (s *System) laserFlash(e game.Event) {
	origin := e.Pos.Add(e.Dir.Mul(30))
	for i := 0; i < 10; i++ {
		s.emit(Particle{
			Pos:   origin,
			Vel:   e.Dir.Mul(300).Add(s.jitter(100)),
			Life:  0.3,
			Color: game.ColorLaser,
			Size:  4,
		})
	}
}

// directed emits n particles along the event direction with random spread
func (s *System) directed(e game.Event, n int, speed, spread, life, size float64) {
	for i := 0; i < n; i++ {
		s.emit(Particle{
			Pos:   e.Pos,
			Vel:   e.Dir.Mul(speed).Add(s.jitter(spread)),
			Life:  life,
			Color: e.Color,
			Size:  size,
		})
	}
}
