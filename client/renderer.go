package client

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ha2san/void-survivor/effects"
	"github.com/ha2san/void-survivor/game"
)

var (
	backgroundColor = color.RGBA{8, 8, 20, 255}
	hpBackColor     = color.RGBA{100, 0, 0, 255}
	hpColor         = color.RGBA{0, 255, 0, 255}
	bulletColor     = color.RGBA{255, 255, 120, 255}
)

// Renderer draws a simulation frame. Every position is shifted by the
// current shake offset.
type Renderer struct {
	offset game.Vec2
}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws the world, the ship and the particles
func (r *Renderer) Render(screen *ebiten.Image, sim *game.Simulation, fx *effects.System, offset game.Vec2) {
	r.offset = offset

	r.drawTrail(screen, sim.Ship())
	r.drawLaser(screen, sim.Laser())
	for i := range sim.Asteroids() {
		r.drawAsteroid(screen, &sim.Asteroids()[i])
	}
	for i := range sim.PowerUps() {
		r.drawPowerUp(screen, &sim.PowerUps()[i])
	}
	for i := range sim.Drones() {
		r.drawDrone(screen, &sim.Drones()[i])
	}
	for i := range sim.Bullets() {
		r.drawBullet(screen, &sim.Bullets()[i])
	}
	for i := range sim.Missiles() {
		r.drawMissile(screen, &sim.Missiles()[i])
	}
	if !sim.Over() {
		r.drawShip(screen, sim.Ship())
	}
	r.drawParticles(screen, fx.Particles())
}

func (r *Renderer) screenPos(p game.Vec2) (float32, float32) {
	return float32(p[0] + r.offset[0]), float32(p[1] + r.offset[1])
}

func (r *Renderer) line(screen *ebiten.Image, a, b game.Vec2, width float32, clr color.Color) {
	ax, ay := r.screenPos(a)
	bx, by := r.screenPos(b)
	vector.StrokeLine(screen, ax, ay, bx, by, width, clr, true)
}

func (r *Renderer) drawShip(screen *ebiten.Image, ship *game.Ship) {
	// Blink while invincible
	if !ship.Invincible.Ready() && int(ship.Invincible.Remaining*10)%2 == 0 {
		return
	}

	nose := ship.Pos.Add(ship.Dir.Mul(15))
	back := ship.Pos.Sub(ship.Dir.Mul(10))
	side := game.Perp(ship.Dir).Mul(9)
	left := back.Add(side)
	right := back.Sub(side)

	clr := game.ColorWhite
	r.line(screen, nose, left, 2, clr)
	r.line(screen, left, right, 2, clr)
	r.line(screen, right, nose, 2, clr)

	if ship.ShieldActive {
		x, y := r.screenPos(ship.Pos)
		vector.StrokeCircle(screen, x, y, float32(game.ShipCollisionRadius+10), 2, fade(game.ColorSkyBlue, 0.4+0.6*ship.ShieldEnergy.Percent()), true)
	}
	if ship.SlowActive {
		x, y := r.screenPos(ship.Pos)
		vector.StrokeCircle(screen, x, y, float32(game.ShipCollisionRadius+16), 1, fade(game.ColorPurple, 0.5), true)
	}
}

func (r *Renderer) drawTrail(screen *ebiten.Image, ship *game.Ship) {
	for i := 1; i < len(ship.Trail); i++ {
		a, b := ship.Trail[i-1], ship.Trail[i]
		// Skip segments broken by a screen wrap
		if game.Distance(a.Pos, b.Pos) > 50 {
			continue
		}
		r.line(screen, a.Pos, b.Pos, 2, fade(game.ColorSkyBlue, b.Life/game.TrailLife))
	}
}

func (r *Renderer) drawLaser(screen *ebiten.Image, laser *game.Laser) {
	if !laser.Active {
		return
	}
	end := laser.Origin.Add(laser.Dir.Mul(game.LaserRange))
	r.line(screen, laser.Origin, end, 8, fade(game.ColorLaser, 0.35))
	r.line(screen, laser.Origin, end, 3, game.ColorLaser)
	r.line(screen, laser.Origin, end, 1, game.ColorWhite)
}

func (r *Renderer) drawAsteroid(screen *ebiten.Image, a *game.Asteroid) {
	x, y := r.screenPos(a.Pos)
	vector.StrokeCircle(screen, x, y, float32(a.Radius), 2, color.RGBA{170, 170, 170, 255}, true)

	// Rotation marker
	tip := a.Pos.Add(game.FromAngle(a.Rotation).Mul(a.Radius))
	r.line(screen, a.Pos, tip, 1, color.RGBA{120, 120, 120, 255})
}

func (r *Renderer) drawDrone(screen *ebiten.Image, d *game.Drone) {
	if d.Dead() {
		return
	}
	x, y := r.screenPos(d.Pos)
	radius := float32(12)
	vector.DrawFilledCircle(screen, x, y, radius, game.DroneColor(d.Kind), true)

	// Health bar for damaged drones
	if d.HP < d.MaxHP && d.MaxHP > 0 {
		barWidth := radius * 2
		barHeight := float32(4)
		barX := x - barWidth/2
		barY := y - radius - barHeight - 2
		vector.DrawFilledRect(screen, barX, barY, barWidth, barHeight, hpBackColor, true)
		vector.DrawFilledRect(screen, barX, barY, barWidth*float32(d.HP)/float32(d.MaxHP), barHeight, hpColor, true)
	}
}

func (r *Renderer) drawBullet(screen *ebiten.Image, b *game.Bullet) {
	x, y := r.screenPos(b.Pos)
	clr := color.Color(bulletColor)
	if b.Hostile {
		clr = game.ColorRed
	}
	vector.DrawFilledCircle(screen, x, y, float32(b.Size), clr, true)
}

func (r *Renderer) drawMissile(screen *ebiten.Image, m *game.Missile) {
	dir := game.NormalizeOrZero(m.Vel)
	tail := m.Pos.Sub(dir.Mul(10))
	r.line(screen, tail, m.Pos, 3, game.ColorOrange)
	x, y := r.screenPos(tail)
	vector.DrawFilledCircle(screen, x, y, 2, game.ColorGold, true)
}

func (r *Renderer) drawPowerUp(screen *ebiten.Image, p *game.PowerUp) {
	x, y := r.screenPos(p.Pos)
	// Pulse, and blink during the last two seconds
	if p.Life < 2 && int(p.Life*8)%2 == 0 {
		return
	}
	pulse := float32(10 + 2*math.Sin(p.Life*6))
	clr := game.PowerUpColor(p.Kind)
	vector.StrokeCircle(screen, x, y, pulse, 2, clr, true)
	vector.DrawFilledCircle(screen, x, y, 5, clr, true)
}

func (r *Renderer) drawParticles(screen *ebiten.Image, particles []effects.Particle) {
	for i := range particles {
		p := &particles[i]
		x, y := r.screenPos(p.Pos)
		vector.DrawFilledCircle(screen, x, y, float32(p.Size), fade(p.Color, p.Alpha()), true)
	}
}

// fade scales a colour's alpha, keeping it premultiplied
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
