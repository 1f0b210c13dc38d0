package game

import "image/color"

// Tally is the score aggregate shared by weapons, collisions and the wave director
type Tally struct {
	Score int

	// Combo counts consecutive hits; it resets when ComboTimer runs out
	Combo      int
	ComboTimer Timer

	// Kills counts drones destroyed toward the current wave quota
	Kills int
}

// NewTally returns an empty tally
func NewTally() Tally {
	return Tally{ComboTimer: NewTimer(ComboWindow)}
}

// Hit awards points for a landed shot and extends the combo
func (t *Tally) Hit(points int) {
	t.Score += points
	t.Combo++
	t.ComboTimer.Reset()
}

// Kill awards points for a destroyed drone and counts it toward the wave
func (t *Tally) Kill(points int) {
	t.Score += points
	t.Kills++
}

// passContext carries the state a resolution pass may mutate besides its own slices
type passContext struct {
	tally  *Tally
	events *EventQueue
	shake  *ScreenShake
	rng    Rand
	drops  *[]PowerUp
	over   *bool
}

// maybeDropPowerUp spawns a power-up at pos with PowerUpChance
func (c *passContext) maybeDropPowerUp(pos Vec2) {
	if c.rng.Float64() < PowerUpChance {
		*c.drops = append(*c.drops, NewPowerUp(c.rng, pos))
	}
}

// hurtShip costs the ship a life if it is vulnerable. Invincibility is read
// live, so a second hit in the same tick is absorbed.
func (c *passContext) hurtShip(ship *Ship, shake float64, at Vec2, col color.RGBA, particles int) bool {
	if !ship.TakeDamage() {
		return false
	}
	c.shake.Trigger(shake)
	c.events.Push(Explosion(at, col, particles))
	if ship.Lives <= 0 && !*c.over {
		*c.over = true
		c.events.Push(Event{Kind: EventGameOver, Pos: ship.Pos})
	}
	return true
}

// awayFrom returns the unit vector from origin to p. Coincident points push up.
func awayFrom(p, origin Vec2) Vec2 {
	dir := NormalizeOrZero(p.Sub(origin))
	if dir.Len() == 0 {
		return V(0, -1)
	}
	return dir
}

// resolveFriendlyBullets tests each player bullet against asteroids first
// (dist < radius) and then drones (dist < DroneHitRadius). The first hit
// consumes the bullet. Asteroids shrink by AsteroidBulletDamage; drones lose
// one hit point and award a kill bonus when it was their last.
func resolveFriendlyBullets(bullets *[]Bullet, asteroids []Asteroid, drones []Drone, ctx *passContext) {
	bs := *bullets
	i := 0
	for i < len(bs) {
		b := &bs[i]
		if b.Hostile {
			i++
			continue
		}

		hit := false
		for j := range asteroids {
			a := &asteroids[j]
			if a.Destroyed() || Distance(b.Pos, a.Pos) >= a.Radius {
				continue
			}
			a.Radius -= AsteroidBulletDamage
			ctx.tally.Hit(ScoreAsteroidHit)
			ctx.events.Push(Explosion(a.Pos, ColorWhite, 10))
			if a.Destroyed() {
				ctx.maybeDropPowerUp(a.Pos)
			}
			hit = true
			break
		}

		if !hit {
			for j := range drones {
				d := &drones[j]
				if d.Dead() || Distance(b.Pos, d.Pos) >= DroneHitRadius {
					continue
				}
				d.HP--
				ctx.tally.Hit(ScoreDroneHit)
				ctx.events.Push(Explosion(d.Pos, ColorRed, 8))
				if d.Dead() {
					ctx.tally.Kill(ScoreDroneKill)
					ctx.events.Push(Explosion(d.Pos, ColorOrange, 15))
					ctx.maybeDropPowerUp(d.Pos)
				}
				hit = true
				break
			}
		}

		if hit {
			bs[i] = bs[len(bs)-1]
			bs = bs[:len(bs)-1]
		} else {
			i++
		}
	}
	*bullets = bs
}

// resolveHostileBullets tests drone bullets against the ship (dist <
// ShipBulletHitRadius) while invincibility is ready. A shielded ship destroys
// the bullet harmlessly; otherwise the ship loses a life. The bullet is
// consumed either way.
func resolveHostileBullets(bullets *[]Bullet, ship *Ship, ctx *passContext) {
	bs := *bullets
	i := 0
	for i < len(bs) {
		b := &bs[i]
		if !b.Hostile || Distance(b.Pos, ship.Pos) >= ShipBulletHitRadius || !ship.Invincible.Ready() {
			i++
			continue
		}

		if ship.ShieldActive {
			ctx.events.Push(Explosion(b.Pos, ColorSkyBlue, 6))
		} else {
			ctx.hurtShip(ship, ShakeBulletHit, ship.Pos, ColorRed, 10)
		}

		bs[i] = bs[len(bs)-1]
		bs = bs[:len(bs)-1]
	}
	*bullets = bs
}

// resolveShipAsteroids tests the ship against every asteroid (dist < radius +
// ShipAsteroidPadding) while invincibility is ready. The shield bounces the
// asteroid away at exactly ShieldAsteroidBounce; otherwise the ship is hurt.
func resolveShipAsteroids(asteroids []Asteroid, ship *Ship, ctx *passContext) {
	for i := range asteroids {
		a := &asteroids[i]
		if a.Destroyed() || !ship.Invincible.Ready() {
			continue
		}
		if Distance(ship.Pos, a.Pos) >= a.Radius+ShipAsteroidPadding {
			continue
		}

		if ship.ShieldActive {
			a.Vel = awayFrom(a.Pos, ship.Pos).Mul(ShieldAsteroidBounce)
			ctx.shake.Trigger(ShakeShieldHit)
			ctx.tally.Score += ScoreShieldBounce
		} else {
			ctx.hurtShip(ship, ShakeHeavyHit, a.Pos, ColorWhite, 12)
		}
	}
}

// resolveShipDrones first crushes each drone against the first asteroid it
// touches (dist < DroneCollateralRadius + radius), then tests surviving drones
// against the ship (dist < ShipDroneHitRadius) while invincibility is ready.
// Unshielded contact costs a life and destroys the drone; shielded contact
// bounces it away and costs it one hit point.
func resolveShipDrones(drones []Drone, asteroids []Asteroid, ship *Ship, ctx *passContext) {
	for i := range drones {
		d := &drones[i]
		if d.Dead() {
			continue
		}

		for j := range asteroids {
			a := &asteroids[j]
			if a.Destroyed() || Distance(d.Pos, a.Pos) >= DroneCollateralRadius+a.Radius {
				continue
			}
			d.HP = 0
			a.Radius -= AsteroidCrushDamage
			ctx.events.Push(Explosion(d.Pos, ColorOrange, 15))
			ctx.shake.Trigger(ShakeCollateral)
			if a.Destroyed() {
				ctx.events.Push(Explosion(a.Pos, ColorWhite, 12))
			}
			ctx.tally.Kill(ScoreCollateralKill)
			// A drone dies on its first rock; later overlaps are left untouched.
			break
		}
		if d.Dead() {
			continue
		}

		if Distance(ship.Pos, d.Pos) >= ShipDroneHitRadius || !ship.Invincible.Ready() {
			continue
		}

		if ship.ShieldActive {
			d.Vel = awayFrom(d.Pos, ship.Pos).Mul(ShieldDroneBounce)
			d.HP--
			ctx.events.Push(Explosion(d.Pos, ColorSkyBlue, 8))
		} else {
			ctx.hurtShip(ship, ShakeHeavyHit, d.Pos, ColorRed, 15)
			d.HP = 0
		}
	}
}

// resolvePowerUps applies every power-up within PowerUpPickupRadius of the ship
// and consumes it.
func resolvePowerUps(powerUps *[]PowerUp, ship *Ship, ctx *passContext) {
	ps := *powerUps
	i := 0
	for i < len(ps) {
		p := ps[i]
		if Distance(ship.Pos, p.Pos) >= PowerUpPickupRadius {
			i++
			continue
		}

		ship.ApplyPowerUp(p.Kind)
		ctx.shake.Trigger(ShakePowerUp)
		ctx.events.Push(Event{Kind: EventPowerUpSpawn, Pos: p.Pos, Color: PowerUpColor(p.Kind), Count: 20})

		ps[i] = ps[len(ps)-1]
		ps = ps[:len(ps)-1]
	}
	*powerUps = ps
}
