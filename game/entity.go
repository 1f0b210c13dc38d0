package game

import "math"

// Asteroid is a drifting rock that shrinks when hit
type Asteroid struct {
	// Position in screen coordinates
	Pos Vec2

	// Velocity in pixels per second
	Vel Vec2

	// Collision radius in pixels; only ever decreases
	Radius float64

	// Rotation in radians (cosmetic)
	Rotation float64

	// Angular velocity in radians per second
	Spin float64
}

// NewAsteroid spawns an asteroid above the top edge at a random column
func NewAsteroid(rng Rand, bounds Bounds, difficulty float64) Asteroid {
	speedScale := math.Min(difficulty, MaxDifficultyVelocity)
	return Asteroid{
		Pos:    V(rng.Float64()*bounds.Width, AsteroidSpawnY),
		Vel:    V(randRange(rng, -50, 50), randRange(rng, 50, 150)*speedScale),
		Radius: randRange(rng, 15, 35),
		Spin:   randRange(rng, -2, 2),
	}
}

// Update integrates position and rotation
func (a *Asteroid) Update(dt float64) {
	a.Pos = a.Pos.Add(a.Vel.Mul(dt))
	a.Rotation += a.Spin * dt
}

// Destroyed reports whether the asteroid has shrunk out of existence
func (a *Asteroid) Destroyed() bool {
	return a.Radius <= AsteroidMinRadius
}

// Alive reports whether the asteroid should be kept after cleanup
func (a *Asteroid) Alive(bounds Bounds) bool {
	return !a.Destroyed() && bounds.Within(a.Pos, AsteroidMargin)
}

// Drone is a hostile craft with hit points
type Drone struct {
	Pos      Vec2
	Vel      Vec2
	Cooldown Timer
	Kind     DroneKind
	HP       int
	MaxHP    int
}

// NewDrone spawns a drone of the given kind above the top edge
func NewDrone(rng Rand, bounds Bounds, kind DroneKind, wave int, difficulty float64) Drone {
	cfg := GetDroneKindConfig(kind)
	hp := 2 + wave/3

	cooldown := NewTimer(1)
	if cfg.FireInterval > 0 {
		cooldown = NewTimer(cfg.FireInterval)
	}
	if kind == DroneSniper {
		cooldown.Set(2 / math.Min(difficulty, MaxDifficultyVelocity))
	}

	return Drone{
		Pos:      V(rng.Float64()*bounds.Width, DroneSpawnY),
		Cooldown: cooldown,
		Kind:     kind,
		HP:       hp,
		MaxHP:    hp,
	}
}

// Update ticks the fire cooldown and moves the drone relative to the ship
func (d *Drone) Update(dt float64, shipPos Vec2) {
	d.Cooldown.Tick(dt)
	cfg := GetDroneKindConfig(d.Kind)

	switch d.Kind {
	case DroneKamikaze:
		toShip := NormalizeOrZero(shipPos.Sub(d.Pos))
		d.Vel = Lerp(d.Vel, toShip.Mul(cfg.ChaseSpeed), cfg.ChaseBlend)
	case DroneSniper:
		d.Vel = V(0, cfg.DescentSpeed)
	case DroneBomber:
		sign := 1.0
		if shipPos[0] < d.Pos[0] {
			sign = -1
		}
		d.Vel = V(sign*cfg.HorizontalSpeed, cfg.DescentSpeed)
	}

	d.Pos = d.Pos.Add(d.Vel.Mul(dt))
}

// Fire returns a hostile bullet when the drone is alive and its cooldown allows one
func (d *Drone) Fire(shipPos, shipVel Vec2) (Bullet, bool) {
	cfg := GetDroneKindConfig(d.Kind)
	if d.Dead() || cfg.FireInterval <= 0 || !d.Cooldown.Ready() {
		return Bullet{}, false
	}

	var vel Vec2
	switch d.Kind {
	case DroneSniper:
		lead := shipPos.Add(shipVel.Mul(cfg.LeadTime))
		dir := NormalizeOrZero(lead.Sub(d.Pos))
		if dir.Len() == 0 {
			dir = V(0, 1)
		}
		vel = dir.Mul(cfg.BulletSpeed)
	default:
		vel = V(0, cfg.BulletSpeed)
	}

	d.Cooldown.Reset()
	return NewBullet(d.Pos, vel, cfg.BulletSize, cfg.BulletLife, true), true
}

// Dead reports whether the drone has no hit points left
func (d *Drone) Dead() bool {
	return d.HP <= 0
}

// Alive reports whether the drone should be kept after cleanup
func (d *Drone) Alive(bounds Bounds) bool {
	return !d.Dead() && bounds.Within(d.Pos, DroneMargin)
}

// Bullet is a projectile; Hostile bullets come from drones
type Bullet struct {
	Pos     Vec2
	Vel     Vec2
	Hostile bool
	Size    float64
	Life    float64
}

// NewBullet creates a bullet
func NewBullet(pos, vel Vec2, size, life float64, hostile bool) Bullet {
	return Bullet{Pos: pos, Vel: vel, Size: size, Life: life, Hostile: hostile}
}

// Update integrates the bullet and ages it
func (b *Bullet) Update(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
	b.Life -= dt
}

// Alive reports whether the bullet should be kept after cleanup
func (b *Bullet) Alive(bounds Bounds) bool {
	return b.Life > 0 && bounds.Within(b.Pos, BulletMargin)
}

// PowerUpKind identifies what a power-up grants
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
	PowerUpLife
	PowerUpSlowTime
	PowerUpRapidFire
	powerUpKindCount
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpLife:
		return "life"
	case PowerUpSlowTime:
		return "slow-time"
	case PowerUpRapidFire:
		return "rapid-fire"
	default:
		return "unknown"
	}
}

// PowerUp is a falling pickup
type PowerUp struct {
	Pos  Vec2
	Vel  Vec2
	Kind PowerUpKind
	Life float64
}

// NewPowerUp drops a random power-up at pos
func NewPowerUp(rng Rand, pos Vec2) PowerUp {
	return PowerUp{
		Pos:  pos,
		Vel:  V(randRange(rng, -30, 30), randRange(rng, -30, 30)),
		Kind: PowerUpKind(rng.Intn(int(powerUpKindCount))),
		Life: PowerUpLifetime,
	}
}

// Update integrates, then applies gravity and ages the power-up
func (p *PowerUp) Update(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Mul(dt))
	p.Vel[1] += PowerUpGravity * dt
	p.Life -= dt
}

// Alive reports whether the power-up should be kept after cleanup
func (p *PowerUp) Alive(bounds Bounds) bool {
	return p.Life > 0 && p.Pos[1] < bounds.Height+PowerUpMargin
}
