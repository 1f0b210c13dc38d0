package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name string
		from Scene
		sig  Signals
		want Scene
	}{
		{"menu idle", SceneMenu, Signals{}, SceneMenu},
		{"menu start", SceneMenu, Signals{Start: true}, ScenePlaying},
		{"menu ignores pause", SceneMenu, Signals{Pause: true}, SceneMenu},
		{"playing pause", ScenePlaying, Signals{Pause: true}, ScenePaused},
		{"playing menu", ScenePlaying, Signals{Menu: true}, SceneMenu},
		{"playing over", ScenePlaying, Signals{GameOver: true}, SceneGameOver},
		{"pause beats game over", ScenePlaying, Signals{Pause: true, GameOver: true}, ScenePaused},
		{"playing ignores start", ScenePlaying, Signals{Start: true}, ScenePlaying},
		{"paused resume", ScenePaused, Signals{Pause: true}, ScenePlaying},
		{"paused menu", ScenePaused, Signals{Menu: true}, SceneMenu},
		{"paused idle", ScenePaused, Signals{Start: true}, ScenePaused},
		{"over restart", SceneGameOver, Signals{Start: true}, ScenePlaying},
		{"over menu", SceneGameOver, Signals{Menu: true}, SceneMenu},
		{"over idle", SceneGameOver, Signals{Pause: true}, SceneGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transition(tt.from, tt.sig))
		})
	}
}

func TestShellFlow(t *testing.T) {
	sim := newTestSimulation(t, nil)
	controls := holding()
	shell := NewShell(sim, controls)

	assert.Equal(t, SceneMenu, shell.Update(0.1))
	assert.Zero(t, sim.Elapsed(), "menu does not advance the game")

	controls.pressed[ControlStart] = true
	assert.Equal(t, ScenePlaying, shell.Update(0.1))
	assert.InDelta(t, 0.1, sim.Elapsed(), 1e-12)
	controls.pressed[ControlStart] = false

	controls.pressed[ControlPause] = true
	assert.Equal(t, ScenePaused, shell.Update(0.1))
	assert.InDelta(t, 0.1, sim.Elapsed(), 1e-12, "paused does not advance the game")

	assert.Equal(t, ScenePlaying, shell.Update(0.1))
	controls.pressed[ControlPause] = false
	assert.InDelta(t, 0.2, sim.Elapsed(), 1e-12, "resuming keeps the session")

	sim.ship.Lives = 1
	sim.world.Bullets = append(sim.world.Bullets, hostileBullet(sim.Ship().Pos))
	assert.Equal(t, SceneGameOver, shell.Update(0.1))

	controls.pressed[ControlStart] = true
	require.Equal(t, ScenePlaying, shell.Update(0.1))
	assert.False(t, sim.Over())
	assert.Equal(t, PlayerLives, sim.Ship().Lives)
	assert.InDelta(t, 0.1, sim.Elapsed(), 1e-12, "restart begins a fresh session")
}
