package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAsteroidRanges(t *testing.T) {
	low := NewAsteroid(stubRand{v: 0}, testBounds, 10)
	assert.Equal(t, V(0, AsteroidSpawnY), low.Pos)
	assert.Equal(t, 15.0, low.Radius)
	assert.Equal(t, -50.0, low.Vel[0])
	assert.Equal(t, 50*MaxDifficultyVelocity, low.Vel[1], "speed scale caps at 3")
	assert.Equal(t, -2.0, low.Spin)

	mid := NewAsteroid(stubRand{v: 0.5}, testBounds, 2)
	assert.Equal(t, 25.0, mid.Radius)
	assert.Equal(t, 200.0, mid.Vel[1])
}

func TestAsteroidLiveness(t *testing.T) {
	a := Asteroid{Pos: V(100, 100), Radius: 10.5}
	assert.True(t, a.Alive(testBounds))

	a.Radius = AsteroidMinRadius
	assert.False(t, a.Alive(testBounds))

	a = Asteroid{Pos: V(100, testBounds.Height+AsteroidMargin-1), Radius: 20}
	assert.True(t, a.Alive(testBounds))
	a.Pos[1] = testBounds.Height + AsteroidMargin
	assert.False(t, a.Alive(testBounds))
}

func TestNewDrone(t *testing.T) {
	d := NewDrone(noLuck, testBounds, DroneBomber, 7, 2)
	assert.Equal(t, 4, d.HP)
	assert.Equal(t, 4, d.MaxHP)
	assert.True(t, d.Cooldown.Ready(), "bombers fire on arrival")

	sniper := NewDrone(noLuck, testBounds, DroneSniper, 1, 4)
	assert.InDelta(t, 2.0/3, sniper.Cooldown.Remaining, 1e-12)
	assert.Equal(t, 2.5, sniper.Cooldown.Max)
}

func TestDroneMovement(t *testing.T) {
	ship := V(400, 300)

	sniper := Drone{Kind: DroneSniper, Pos: V(100, 0), Cooldown: NewTimer(2.5), HP: 1}
	sniper.Update(1, ship)
	assert.Equal(t, V(100, 20), sniper.Pos)

	bomber := Drone{Kind: DroneBomber, Pos: V(500, 0), Cooldown: NewTimer(3), HP: 1}
	bomber.Update(1, ship)
	assert.Equal(t, V(420, 30), bomber.Pos)

	aligned := Drone{Kind: DroneBomber, Pos: V(400, 0), Cooldown: NewTimer(3), HP: 1}
	aligned.Update(1, ship)
	assert.Equal(t, V(480, 30), aligned.Pos, "a bomber straight above drifts right")

	kamikaze := Drone{Kind: DroneKamikaze, Pos: V(400, 0), Cooldown: NewTimer(1), HP: 1}
	kamikaze.Update(1, ship)
	assert.InDelta(t, 4, kamikaze.Vel[1], 1e-9)
	assert.InDelta(t, 4, kamikaze.Pos[1], 1e-9)

	onTop := Drone{Kind: DroneKamikaze, Pos: ship, Cooldown: NewTimer(1), HP: 1}
	onTop.Update(1, ship)
	assert.Equal(t, ship, onTop.Pos)
}

func TestDroneFire(t *testing.T) {
	sniper := Drone{Kind: DroneSniper, Pos: V(0, 0), Cooldown: NewTimer(2.5), HP: 1}
	b, ok := sniper.Fire(V(300, 400), V(0, 0))
	require.True(t, ok)
	assert.True(t, b.Hostile)
	assert.Equal(t, 4.0, b.Size)
	assert.InDelta(t, 240, b.Vel[0], 1e-9)
	assert.InDelta(t, 320, b.Vel[1], 1e-9)
	assert.Equal(t, 2.5, sniper.Cooldown.Remaining)

	_, ok = sniper.Fire(V(300, 400), V(0, 0))
	assert.False(t, ok)

	led := Drone{Kind: DroneSniper, Pos: V(0, 0), Cooldown: NewTimer(2.5), HP: 1}
	b, _ = led.Fire(V(0, 100), V(250, 0))
	assert.InDelta(t, 0.6*400, b.Vel[0], 1e-9)

	bomber := Drone{Kind: DroneBomber, Pos: V(10, 10), Cooldown: NewTimer(3), HP: 1}
	b, ok = bomber.Fire(V(300, 400), V(0, 0))
	require.True(t, ok)
	assert.Equal(t, V(0, 150), b.Vel)
	assert.Equal(t, 6.0, b.Size)
	assert.Equal(t, 3.0, bomber.Cooldown.Remaining)

	kamikaze := Drone{Kind: DroneKamikaze, Cooldown: NewTimer(1), HP: 1}
	_, ok = kamikaze.Fire(V(300, 400), V(0, 0))
	assert.False(t, ok)
}

func TestBulletLiveness(t *testing.T) {
	b := NewBullet(V(100, 100), V(100, 0), 3, 1, false)
	b.Update(0.5)
	assert.Equal(t, V(150, 100), b.Pos)
	assert.True(t, b.Alive(testBounds))

	b.Update(0.5)
	assert.False(t, b.Alive(testBounds))

	far := NewBullet(V(-BulletMargin, 100), Vec2{}, 3, 1, false)
	assert.False(t, far.Alive(testBounds))
}

func TestPowerUpFalls(t *testing.T) {
	p := NewPowerUp(stubRand{v: 0.5}, V(100, 100))
	assert.Equal(t, PowerUpSlowTime, p.Kind)
	assert.Equal(t, Vec2{}, p.Vel)
	assert.Equal(t, PowerUpLifetime, p.Life)

	p.Update(1)
	assert.Equal(t, PowerUpGravity, p.Vel[1])
	assert.Equal(t, 100.0, p.Pos[1], "moves with the old velocity before gravity applies")

	p.Update(1)
	assert.Equal(t, 2*PowerUpGravity, p.Vel[1])
	assert.Equal(t, 100+PowerUpGravity, p.Pos[1])
	assert.True(t, p.Alive(testBounds))

	p.Pos[1] = testBounds.Height + PowerUpMargin
	assert.False(t, p.Alive(testBounds))

	p.Pos[1] = 100
	p.Life = 0
	assert.False(t, p.Alive(testBounds))
}
