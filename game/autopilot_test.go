package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictiveAim(t *testing.T) {
	// Stationary target
	assert.Equal(t, V(100, 0), PredictiveAim(V(0, 0), V(100, 0), V(0, 0), 500))

	// Target crossing at half the projectile speed
	aim := PredictiveAim(V(0, 0), V(300, 0), V(0, 250), 500)
	tHit := aim.Len() / 500
	assert.InDelta(t, 0, aim.Sub(V(300, 250*tHit)).Len(), 0.5)
	assert.Greater(t, aim[1], 0.0)
}

func TestAngleDiff(t *testing.T) {
	assert.InDelta(t, 0.5, AngleDiff(0, 0.5), 1e-12)
	assert.InDelta(t, -0.5, AngleDiff(0.5, 0), 1e-12)
	assert.InDelta(t, 0.2, AngleDiff(math.Pi-0.1, -math.Pi+0.1), 1e-9)
	assert.InDelta(t, -0.2, AngleDiff(-math.Pi+0.1, math.Pi-0.1), 1e-9)
}

func TestAutopilotAimsAndShoots(t *testing.T) {
	sim := newTestSimulation(t, nil)
	ap := NewAutopilot()
	sim.SetControls(ap)
	sim.world.Asteroids = append(sim.world.Asteroids, Asteroid{Pos: sim.Ship().Pos.Add(V(0, 200)), Radius: 20})

	ap.Update(sim)

	require.True(t, ap.HasTarget)
	assert.True(t, ap.Held(ControlTurnRight), "target below is a positive rotation")
	assert.False(t, ap.Held(ControlTurnLeft))
	assert.False(t, ap.Held(ControlShoot), "not facing the target yet")
	assert.False(t, ap.Pressed(ControlMissile), "no drones to chase")

	for i := 0; i < 120 && !ap.Held(ControlShoot); i++ {
		ap.Update(sim)
		sim.Step(1.0 / 60)
	}
	assert.True(t, ap.Held(ControlShoot))
}

func TestAutopilotRaisesShield(t *testing.T) {
	sim := newTestSimulation(t, nil)
	ap := NewAutopilot()
	sim.world.Bullets = append(sim.world.Bullets, hostileBullet(sim.Ship().Pos.Add(V(30, 0))))

	ap.Update(sim)
	assert.True(t, ap.Held(ControlShield))

	sim.Ship().Invincible.Reset()
	ap.Update(sim)
	assert.False(t, ap.Held(ControlShield), "no need while invincible")
}

func TestAutopilotUsesHeavyWeapons(t *testing.T) {
	sim := newTestSimulation(t, nil)
	ap := NewAutopilot()
	pos := sim.Ship().Pos
	sim.world.Drones = append(sim.world.Drones,
		Drone{Pos: pos.Add(V(150, 0)), HP: 2, Cooldown: NewTimer(1), Kind: DroneKamikaze},
		Drone{Pos: pos.Add(V(300, 0)), HP: 2, Cooldown: NewTimer(1), Kind: DroneKamikaze},
	)

	ap.Update(sim)

	assert.True(t, ap.Pressed(ControlMissile))
	assert.True(t, ap.Pressed(ControlLaser))
	assert.True(t, ap.Held(ControlShoot))
}

func TestAutopilotSurvivesHeadlessRun(t *testing.T) {
	sim, err := NewSimulation(DefaultConfig(), nil, stubRand{v: 0.01})
	require.NoError(t, err)
	ap := NewAutopilot()
	sim.SetControls(ap)

	for i := 0; i < 600 && !sim.Over(); i++ {
		ap.Update(sim)
		sim.Advance(1.0 / 60)
	}

	assert.GreaterOrEqual(t, sim.Score(), 0)
	assert.False(t, ap.Pressed(ControlCount))
}
