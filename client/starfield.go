package client

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/ha2san/void-survivor/game"
)

const (
	starCount      = 120
	starParallax   = 0.05 // share of ship velocity a depth-1 star drifts by
	starDriftSpeed = 12.0 // base downward scroll, pixels per second
	twinkleScale   = 0.02
	twinkleSpeed   = 0.8
)

type star struct {
	pos   game.Vec2
	depth float64 // 0.2 (far) to 1 (near)
}

// Starfield is a parallax background whose stars twinkle on a noise field
type Starfield struct {
	stars []star
	noise opensimplex.Noise
	t     float64
}

// NewStarfield scatters stars over a width by height area
func NewStarfield(seed int64, width, height float64) *Starfield {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{
			pos:   game.V(rng.Float64()*width, rng.Float64()*height),
			depth: 0.2 + rng.Float64()*0.8,
		}
	}
	return &Starfield{
		stars: stars,
		noise: opensimplex.NewNormalized(seed),
	}
}

// Update scrolls the stars opposite to the ship's motion, wrapping at the edges
func (s *Starfield) Update(dt float64, shipVel game.Vec2, bounds game.Bounds) {
	s.t += dt
	for i := range s.stars {
		st := &s.stars[i]
		drift := game.V(0, starDriftSpeed).Sub(shipVel.Mul(starParallax))
		st.pos = st.pos.Add(drift.Mul(dt * st.depth))

		if st.pos[0] < 0 {
			st.pos[0] += bounds.Width
		} else if st.pos[0] >= bounds.Width {
			st.pos[0] -= bounds.Width
		}
		if st.pos[1] < 0 {
			st.pos[1] += bounds.Height
		} else if st.pos[1] >= bounds.Height {
			st.pos[1] -= bounds.Height
		}
	}
}

// Brightness returns a star's twinkle level in [0, 1]
func (s *Starfield) Brightness(i int) float64 {
	st := s.stars[i]
	n := s.noise.Eval2(st.pos[0]*twinkleScale+float64(i), s.t*twinkleSpeed)
	return st.depth * (0.4 + 0.6*n)
}

// Draw renders every star
func (s *Starfield) Draw(screen *ebiten.Image, offset game.Vec2) {
	for i, st := range s.stars {
		b := uint8(255 * s.Brightness(i))
		clr := color.RGBA{b, b, b, 255}
		x := float32(st.pos[0] + offset[0]*st.depth)
		y := float32(st.pos[1] + offset[1]*st.depth)
		vector.DrawFilledRect(screen, x, y, float32(1+st.depth), float32(1+st.depth), clr, false)
	}
}
