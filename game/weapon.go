package game

import "math"

// antiparallelDot is the alignment below which a missile treats its target as
// directly behind it.
const antiparallelDot = -0.999

// Missile is a homing projectile fired by the ship
type Missile struct {
	Pos   Vec2
	Vel   Vec2
	Speed float64
	Life  float64

	// Consumed is set once the missile has hit something
	Consumed bool
}

// NewMissile launches a missile along dir
func NewMissile(pos, dir Vec2) Missile {
	return Missile{
		Pos:   pos,
		Vel:   dir.Mul(MissileSpeed),
		Speed: MissileSpeed,
		Life:  MissileLife,
	}
}

// Update integrates the missile and ages it
func (m *Missile) Update(dt float64) {
	m.Pos = m.Pos.Add(m.Vel.Mul(dt))
	m.Life -= dt
}

// Steer turns the missile toward target by blending its heading with the
// desired one. Speed is preserved exactly.
func (m *Missile) Steer(target Vec2, dt float64) {
	desired := NormalizeOrZero(target.Sub(m.Pos))
	if desired.Len() == 0 {
		return
	}
	current := NormalizeOrZero(m.Vel)
	if current.Len() == 0 {
		m.Vel = desired.Mul(m.Speed)
		return
	}

	// A target straight behind would lerp through zero; turn left instead
	if current.Dot(desired) < antiparallelDot {
		desired = Perp(current)
	}

	heading := NormalizeOrZero(Lerp(current, desired, math.Min(MissileTurnSpeed*dt, 1)))
	if heading.Len() == 0 {
		return
	}
	m.Vel = heading.Mul(m.Speed)
}

// Alive reports whether the missile should be kept after cleanup
func (m *Missile) Alive(bounds Bounds) bool {
	return m.Life > 0 && !m.Consumed && bounds.Within(m.Pos, MissileMargin)
}

// Laser is the ship's piercing beam
type Laser struct {
	Active   bool
	Origin   Vec2
	Dir      Vec2
	Duration Timer
	Cooldown Timer
}

// NewLaser returns an idle laser ready to fire
func NewLaser() Laser {
	return Laser{
		Duration: NewTimer(LaserDuration),
		Cooldown: NewTimer(LaserCooldown),
	}
}

// CanFire reports whether the laser may be triggered
func (l *Laser) CanFire() bool {
	return !l.Active && l.Cooldown.Ready()
}

// Fire activates the beam from origin along dir
func (l *Laser) Fire(origin, dir Vec2) {
	l.Active = true
	l.Duration.Reset()
	l.Cooldown.Reset()
	l.Origin = origin
	l.Dir = dir
}

// Update keeps an active beam attached to the ship and expires it; an idle
// laser recovers its cooldown instead.
func (l *Laser) Update(dt float64, origin, dir Vec2) {
	if !l.Active {
		l.Cooldown.Tick(dt)
		return
	}
	l.Duration.Tick(dt)
	l.Origin = origin
	l.Dir = dir
	if l.Duration.Ready() {
		l.Active = false
	}
}

// Covers reports whether a circle at pos with the given perpendicular
// tolerance lies on the beam. The projection range is inclusive.
func (l *Laser) Covers(pos Vec2, tolerance float64) bool {
	proj := pos.Sub(l.Origin).Dot(l.Dir)
	if proj < 0 || proj > LaserRange {
		return false
	}
	closest := l.Origin.Add(l.Dir.Mul(proj))
	return Distance(closest, pos) < tolerance
}

// WeaponSystem owns the gun, the missile rack and the laser
type WeaponSystem struct {
	FireCooldown Timer

	MissileAmmo     int
	MissileCooldown Timer
	AmmoRegen       float64
	Missiles        []Missile

	Laser Laser
}

// NewWeaponSystem returns a fully stocked weapon system
func NewWeaponSystem() WeaponSystem {
	return WeaponSystem{
		FireCooldown:    NewTimer(FireRate),
		MissileAmmo:     MissileAmmoMax,
		MissileCooldown: NewTimer(MissileCooldown),
		Missiles:        make([]Missile, 0, MissileAmmoMax),
		Laser:           NewLaser(),
	}
}

// Update handles triggers for all three weapons, then advances ammo regen and
// the laser. Recoil is applied to the ship.
func (w *WeaponSystem) Update(dt float64, ship *Ship, controls Controls, bullets *[]Bullet, events *EventQueue) {
	w.FireCooldown.Tick(dt)
	w.MissileCooldown.Tick(dt)

	dir := FromAngle(ship.Rot)

	w.handleGun(ship, dir, controls, bullets, events)
	w.handleMissileLaunch(ship, dir, controls, events)
	w.regenAmmo(dt)
	w.handleLaser(ship, dir, controls, events)

	w.Laser.Update(dt, ship.Pos, dir)
}

func (w *WeaponSystem) handleGun(ship *Ship, dir Vec2, controls Controls, bullets *[]Bullet, events *EventQueue) {
	wantsFire := controls.Held(ControlShoot) || controls.Pressed(ControlShoot)
	if !wantsFire || ship.ShieldActive || !w.FireCooldown.Ready() {
		return
	}

	rate, size := FireRate, BulletSize
	if !ship.RapidFire.Ready() {
		rate, size = RapidFireRate, RapidBulletSize
	}

	*bullets = append(*bullets, NewBullet(
		ship.Pos.Add(dir.Mul(BulletMuzzleOffset)),
		dir.Mul(BulletSpeed),
		size, BulletLife, false,
	))
	ship.Vel = ship.Vel.Sub(dir.Mul(GunRecoil))
	w.FireCooldown.Set(rate)

	events.Push(Event{Kind: EventMuzzleFlash, Pos: ship.Pos.Add(dir.Mul(10)), Dir: dir, Color: ColorSkyBlue, Count: 2})
}

func (w *WeaponSystem) handleMissileLaunch(ship *Ship, dir Vec2, controls Controls, events *EventQueue) {
	if !controls.Pressed(ControlMissile) || ship.ShieldActive ||
		w.MissileAmmo <= 0 || !w.MissileCooldown.Ready() {
		return
	}

	launch := ship.Pos.Add(dir.Mul(MissileMuzzleOffset))
	w.Missiles = append(w.Missiles, NewMissile(launch, dir))
	w.MissileAmmo--
	w.MissileCooldown.Reset()
	ship.Vel = ship.Vel.Sub(dir.Mul(MissileRecoil))

	events.Push(Event{Kind: EventMissileLaunch, Pos: launch, Dir: dir, Color: ColorOrange, Count: 5})
}

// regenAmmo restores one missile per accumulated MissileAmmoRegen seconds
func (w *WeaponSystem) regenAmmo(dt float64) {
	if w.MissileAmmo >= MissileAmmoMax {
		return
	}
	w.AmmoRegen += dt
	if w.AmmoRegen >= MissileAmmoRegen {
		w.MissileAmmo = min(w.MissileAmmo+1, MissileAmmoMax)
		w.AmmoRegen = 0
	}
}

func (w *WeaponSystem) handleLaser(ship *Ship, dir Vec2, controls Controls, events *EventQueue) {
	if !controls.Pressed(ControlLaser) || ship.ShieldActive || !w.Laser.CanFire() {
		return
	}
	w.Laser.Fire(ship.Pos, dir)
	ship.Vel = ship.Vel.Sub(dir.Mul(LaserRecoil))

	events.Push(Event{Kind: EventLaserFired, Pos: ship.Pos, Dir: dir, Color: ColorLaser, Count: 10})
}

// missileTarget picks the nearest live drone by squared distance, falling
// back to the nearest live asteroid.
func missileTarget(pos Vec2, drones []Drone, asteroids []Asteroid) (Vec2, bool) {
	var target Vec2
	found := false
	best := math.Inf(1)

	for i := range drones {
		if drones[i].Dead() {
			continue
		}
		if d := DistanceSq(pos, drones[i].Pos); d < best {
			best, target, found = d, drones[i].Pos, true
		}
	}
	if found {
		return target, true
	}

	for i := range asteroids {
		if asteroids[i].Destroyed() {
			continue
		}
		if d := DistanceSq(pos, asteroids[i].Pos); d < best {
			best, target, found = d, asteroids[i].Pos, true
		}
	}
	return target, found
}

// updateMissiles moves and steers every missile, then resolves hits: drones
// first (dist < DroneHitRadius), asteroids otherwise (dist < radius +
// MissileRockPadding). A missile that hits is consumed and swap-removed.
func (w *WeaponSystem) updateMissiles(dt float64, drones []Drone, asteroids []Asteroid, ctx *passContext) {
	for i := range w.Missiles {
		m := &w.Missiles[i]
		m.Update(dt)
		if target, ok := missileTarget(m.Pos, drones, asteroids); ok {
			m.Steer(target, dt)
		}
	}

	i := 0
	for i < len(w.Missiles) {
		m := &w.Missiles[i]
		if m.hitDrone(drones, ctx) || m.hitAsteroid(asteroids, ctx) {
			m.Consumed = true
			w.Missiles[i] = w.Missiles[len(w.Missiles)-1]
			w.Missiles = w.Missiles[:len(w.Missiles)-1]
			continue
		}
		i++
	}
}

func (m *Missile) hitDrone(drones []Drone, ctx *passContext) bool {
	for i := range drones {
		d := &drones[i]
		if d.Dead() || Distance(m.Pos, d.Pos) >= DroneHitRadius {
			continue
		}
		d.HP -= MissileDroneDamage
		ctx.tally.Hit(ScoreMissileDrone)
		ctx.events.Push(Explosion(m.Pos, ColorOrange, 12))
		if d.Dead() {
			ctx.tally.Kill(ScoreDroneKill)
			ctx.maybeDropPowerUp(d.Pos)
		}
		return true
	}
	return false
}

func (m *Missile) hitAsteroid(asteroids []Asteroid, ctx *passContext) bool {
	for i := range asteroids {
		a := &asteroids[i]
		if a.Destroyed() || Distance(m.Pos, a.Pos) >= a.Radius+MissileRockPadding {
			continue
		}
		a.Radius -= MissileRockDamage
		ctx.tally.Hit(ScoreMissileRock)
		ctx.events.Push(Explosion(m.Pos, ColorOrange, 12))
		if a.Destroyed() {
			ctx.maybeDropPowerUp(a.Pos)
		}
		return true
	}
	return false
}

// applyLaser damages up to LaserMaxPenetration enemies on the active beam,
// drones before asteroids, stopping as soon as the cap is reached.
func (w *WeaponSystem) applyLaser(drones []Drone, asteroids []Asteroid, ctx *passContext) {
	l := &w.Laser
	if !l.Active {
		return
	}

	hits := 0
	for i := range drones {
		if hits >= LaserMaxPenetration {
			return
		}
		d := &drones[i]
		if d.Dead() || !l.Covers(d.Pos, LaserDroneWidth) {
			continue
		}
		d.HP -= LaserDamage
		hits++
		ctx.events.Push(Explosion(d.Pos, ColorRed, 6))
		if d.Dead() {
			ctx.tally.Kill(ScoreDroneKill)
			ctx.maybeDropPowerUp(d.Pos)
		}
	}

	for i := range asteroids {
		if hits >= LaserMaxPenetration {
			return
		}
		a := &asteroids[i]
		if a.Destroyed() || !l.Covers(a.Pos, a.Radius+LaserRockPadding) {
			continue
		}
		a.Radius -= LaserRockDamage
		hits++
		ctx.events.Push(Explosion(a.Pos, ColorRed, 6))
		if a.Destroyed() {
			ctx.maybeDropPowerUp(a.Pos)
		}
	}
}
