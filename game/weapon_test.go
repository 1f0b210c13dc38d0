package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGunFiresAndRespectsRate(t *testing.T) {
	ship := quietShip()
	w := NewWeaponSystem()
	events := NewEventQueue()
	var bullets []Bullet

	w.Update(0.01, &ship, holding(ControlShoot), &bullets, events)

	require.Len(t, bullets, 1)
	b := bullets[0]
	assert.False(t, b.Hostile)
	assert.Equal(t, BulletSize, b.Size)
	assert.Equal(t, BulletLife, b.Life)
	assert.InDelta(t, 0, b.Pos.Sub(ship.Pos.Add(V(BulletMuzzleOffset, 0))).Len(), 1e-9)
	assert.InDelta(t, 0, b.Vel.Sub(V(BulletSpeed, 0)).Len(), 1e-9)
	assert.InDelta(t, -GunRecoil, ship.Vel[0], 1e-9)
	assert.Equal(t, FireRate, w.FireCooldown.Remaining)
	assert.Equal(t, []EventKind{EventMuzzleFlash}, drainKinds(events))

	w.Update(0.1, &ship, holding(ControlShoot), &bullets, events)
	assert.Len(t, bullets, 1)

	w.Update(0.15, &ship, holding(ControlShoot), &bullets, events)
	assert.Len(t, bullets, 2)
}

func TestGunRapidFire(t *testing.T) {
	ship := quietShip()
	ship.RapidFire.Reset()
	w := NewWeaponSystem()
	var bullets []Bullet

	w.Update(0.01, &ship, pressing(ControlShoot), &bullets, NewEventQueue())

	require.Len(t, bullets, 1)
	assert.Equal(t, RapidBulletSize, bullets[0].Size)
	assert.Equal(t, RapidFireRate, w.FireCooldown.Remaining)
}

func TestShieldBlocksWeapons(t *testing.T) {
	ship := quietShip()
	ship.ShieldActive = true
	w := NewWeaponSystem()
	events := NewEventQueue()
	var bullets []Bullet

	controls := pressing(ControlShoot, ControlMissile, ControlLaser)
	controls.held[ControlShoot] = true
	w.Update(0.01, &ship, controls, &bullets, events)

	assert.Empty(t, bullets)
	assert.Empty(t, w.Missiles)
	assert.False(t, w.Laser.Active)
	assert.Zero(t, events.Len())
}

func TestMissileLaunch(t *testing.T) {
	ship := quietShip()
	w := NewWeaponSystem()
	events := NewEventQueue()

	w.Update(0.01, &ship, pressing(ControlMissile), nil, events)

	require.Len(t, w.Missiles, 1)
	assert.Equal(t, MissileAmmoMax-1, w.MissileAmmo)
	assert.Equal(t, MissileCooldown, w.MissileCooldown.Remaining)
	assert.InDelta(t, -MissileRecoil, ship.Vel[0], 1e-9)
	assert.Equal(t, []EventKind{EventMissileLaunch}, drainKinds(events))

	w.Update(0.01, &ship, pressing(ControlMissile), nil, events)
	assert.Len(t, w.Missiles, 1, "cooldown gates the second launch")

	w.Update(0.01, &ship, holding(ControlMissile), nil, events)
	assert.Len(t, w.Missiles, 1, "holding is not a fresh press")
}

func TestMissileNeedsAmmo(t *testing.T) {
	ship := quietShip()
	w := NewWeaponSystem()
	w.MissileAmmo = 0

	w.Update(0.01, &ship, pressing(ControlMissile), nil, NewEventQueue())

	assert.Empty(t, w.Missiles)
}

func TestMissileAmmoRegen(t *testing.T) {
	w := NewWeaponSystem()
	w.MissileAmmo = 3

	w.regenAmmo(0.6)
	assert.Equal(t, 3, w.MissileAmmo)
	w.regenAmmo(0.6)
	assert.Equal(t, 4, w.MissileAmmo)
	assert.Equal(t, 0.0, w.AmmoRegen)

	w.MissileAmmo = MissileAmmoMax
	w.regenAmmo(5)
	assert.Equal(t, MissileAmmoMax, w.MissileAmmo)
	assert.Equal(t, 0.0, w.AmmoRegen)
}

func TestMissileHomingKeepsSpeedAndConverges(t *testing.T) {
	const dt = 1.0 / 60
	m := NewMissile(V(100, 100), V(1, 0))
	target := V(-2000, 100)

	for i := 0; i < 180; i++ {
		m.Update(dt)
		m.Steer(target, dt)
		require.InDelta(t, MissileSpeed, m.Vel.Len(), 1e-6)
	}

	heading := NormalizeOrZero(m.Vel)
	toTarget := NormalizeOrZero(target.Sub(m.Pos))
	assert.Greater(t, heading.Dot(toTarget), 0.9)
}

func TestMissileSteersOffAntiparallel(t *testing.T) {
	m := NewMissile(V(100, 100), V(1, 0))

	m.Steer(V(0, 100), 1.0/60)

	assert.InDelta(t, MissileSpeed, m.Vel.Len(), 1e-9)
	assert.NotZero(t, m.Vel[1], "a target straight behind must still turn the missile")
}

func TestMissileTargetPrefersDrones(t *testing.T) {
	drones := []Drone{{Pos: V(500, 0), HP: 1}, {Pos: V(10, 0), HP: 0}}
	asteroids := []Asteroid{{Pos: V(1, 0), Radius: 30}}

	target, ok := missileTarget(V(0, 0), drones, asteroids)
	require.True(t, ok)
	assert.Equal(t, V(500, 0), target)

	target, ok = missileTarget(V(0, 0), nil, asteroids)
	require.True(t, ok)
	assert.Equal(t, V(1, 0), target)

	_, ok = missileTarget(V(0, 0), nil, []Asteroid{{Radius: 5}})
	assert.False(t, ok)
}

func TestMissileHitsDrone(t *testing.T) {
	tp := newTestPass(noLuck)
	w := NewWeaponSystem()
	w.Missiles = append(w.Missiles, NewMissile(V(200, 200), V(1, 0)))
	drones := []Drone{{Pos: V(205, 200), HP: 2, MaxHP: 2}}

	w.updateMissiles(0, drones, nil, tp.ctx)

	assert.Empty(t, w.Missiles)
	assert.Equal(t, 0, drones[0].HP)
	assert.Equal(t, ScoreMissileDrone+ScoreDroneKill, tp.tally.Score)
	assert.Equal(t, 1, tp.tally.Kills)
	assert.Equal(t, 1, tp.tally.Combo)
}

func TestMissileHitsAsteroid(t *testing.T) {
	tp := newTestPass(noLuck)
	w := NewWeaponSystem()
	w.Missiles = append(w.Missiles, NewMissile(V(200, 200), V(1, 0)))
	asteroids := []Asteroid{{Pos: V(225, 200), Radius: 30}}

	w.updateMissiles(0, nil, asteroids, tp.ctx)

	assert.Empty(t, w.Missiles)
	assert.Equal(t, 15.0, asteroids[0].Radius)
	assert.Equal(t, ScoreMissileRock, tp.tally.Score)
}

func TestMissileExpires(t *testing.T) {
	m := NewMissile(V(100, 100), V(1, 0))
	assert.True(t, m.Alive(testBounds))

	m.Life = 0
	assert.False(t, m.Alive(testBounds))

	m = NewMissile(V(-101, 100), V(1, 0))
	assert.False(t, m.Alive(testBounds))

	m = NewMissile(V(100, 100), V(1, 0))
	m.Consumed = true
	assert.False(t, m.Alive(testBounds))
}

func TestLaserLifecycle(t *testing.T) {
	ship := quietShip()
	w := NewWeaponSystem()
	events := NewEventQueue()

	w.Update(0.5, &ship, pressing(ControlLaser), nil, events)

	require.True(t, w.Laser.Active)
	assert.InDelta(t, LaserDuration-0.5, w.Laser.Duration.Remaining, 1e-9)
	assert.Equal(t, LaserCooldown, w.Laser.Cooldown.Remaining)
	assert.InDelta(t, -LaserRecoil, ship.Vel[0], 1e-9)
	assert.Equal(t, []EventKind{EventLaserFired}, drainKinds(events))

	// Cooldown does not recover while the beam is active
	w.Update(0.5, &ship, NoControls{}, nil, events)
	assert.True(t, w.Laser.Active)
	assert.Equal(t, LaserCooldown, w.Laser.Cooldown.Remaining)

	w.Update(0.5, &ship, NoControls{}, nil, events)
	assert.False(t, w.Laser.Active)

	w.Update(0.5, &ship, pressing(ControlLaser), nil, events)
	assert.False(t, w.Laser.Active, "cooldown still running")
	assert.InDelta(t, LaserCooldown-0.5, w.Laser.Cooldown.Remaining, 1e-9)
}

func TestLaserFollowsShip(t *testing.T) {
	l := NewLaser()
	l.Fire(V(0, 0), V(1, 0))
	l.Update(0.1, V(50, 60), V(0, 1))

	assert.Equal(t, V(50, 60), l.Origin)
	assert.Equal(t, V(0, 1), l.Dir)
}

func TestLaserCovers(t *testing.T) {
	l := NewLaser()
	l.Fire(V(0, 0), V(1, 0))

	assert.True(t, l.Covers(V(100, 14), LaserDroneWidth))
	assert.False(t, l.Covers(V(100, 15), LaserDroneWidth))
	assert.True(t, l.Covers(V(LaserRange, 0), LaserDroneWidth))
	assert.False(t, l.Covers(V(LaserRange+1, 0), LaserDroneWidth))
	assert.True(t, l.Covers(V(0, 5), LaserDroneWidth))
	assert.False(t, l.Covers(V(-1, 0), LaserDroneWidth))
}

func TestLaserPenetrationCap(t *testing.T) {
	tp := newTestPass(noLuck)
	w := NewWeaponSystem()
	w.Laser.Fire(V(0, 300), V(1, 0))

	drones := make([]Drone, 6)
	for i := range drones {
		drones[i] = Drone{Pos: V(float64(100+i*50), 300), HP: 10, MaxHP: 10}
	}
	asteroids := []Asteroid{{Pos: V(50, 300), Radius: 30}}

	w.applyLaser(drones, asteroids, tp.ctx)

	for i := 0; i < LaserMaxPenetration; i++ {
		assert.Equal(t, 10-LaserDamage, drones[i].HP)
	}
	assert.Equal(t, 10, drones[5].HP)
	assert.Equal(t, 30.0, asteroids[0].Radius)
	assert.Equal(t, LaserMaxPenetration, tp.events.Len())
}

func TestLaserKillsAndShrinks(t *testing.T) {
	tp := newTestPass(noLuck)
	w := NewWeaponSystem()
	w.Laser.Fire(V(0, 0), FromAngle(math.Pi/2))

	drones := []Drone{{Pos: V(0, 100), HP: 2, MaxHP: 2}, {Pos: V(100, 100), HP: 2, MaxHP: 2}}
	asteroids := []Asteroid{{Pos: V(25, 300), Radius: 20}}

	w.applyLaser(drones, asteroids, tp.ctx)

	assert.Equal(t, 0, drones[0].HP)
	assert.Equal(t, 2, drones[1].HP)
	assert.Equal(t, 10.0, asteroids[0].Radius)
	assert.Equal(t, ScoreDroneKill, tp.tally.Score)
	assert.Equal(t, 1, tp.tally.Kills)
}

func TestInactiveLaserDoesNothing(t *testing.T) {
	tp := newTestPass(noLuck)
	w := NewWeaponSystem()
	drones := []Drone{{Pos: V(100, 0), HP: 2}}

	w.applyLaser(drones, nil, tp.ctx)

	assert.Equal(t, 2, drones[0].HP)
}
