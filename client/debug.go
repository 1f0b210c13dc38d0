package client

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ha2san/void-survivor/game"
)

var hitboxColor = color.RGBA{0, 255, 120, 160}

// DebugState holds overlay toggles that persist across sessions
type DebugState struct {
	ShowOverlay  bool // F1: counters and timing
	ShowHitboxes bool // F2: collision radii
}

// DrawDebug draws whichever debug layers are enabled
func DrawDebug(screen *ebiten.Image, state DebugState, sim *game.Simulation, fps float64) {
	if state.ShowHitboxes {
		drawHitboxes(screen, sim)
	}
	if !state.ShowOverlay {
		return
	}
	snap := sim.Snapshot()
	msg := fmt.Sprintf("FPS %.0f  TPS %.0f\nsession %s\ndifficulty %.2f\nasteroids %d drones %d\nbullets %d missiles %d powerups %d",
		fps, ebiten.ActualTPS(),
		snap.SessionID,
		sim.Difficulty(),
		snap.Asteroids, snap.Drones,
		snap.Bullets, snap.Missiles, snap.PowerUps,
	)
	ebitenutil.DebugPrintAt(screen, msg, 4, screen.Bounds().Dy()-110)
}

func drawHitboxes(screen *ebiten.Image, sim *game.Simulation) {
	ship := sim.Ship()
	vector.StrokeCircle(screen, float32(ship.Pos[0]), float32(ship.Pos[1]), float32(game.ShipCollisionRadius), 1, hitboxColor, false)
	for _, a := range sim.Asteroids() {
		vector.StrokeCircle(screen, float32(a.Pos[0]), float32(a.Pos[1]), float32(a.Radius+game.ShipAsteroidPadding), 1, hitboxColor, false)
	}
	for _, d := range sim.Drones() {
		vector.StrokeCircle(screen, float32(d.Pos[0]), float32(d.Pos[1]), float32(game.ShipDroneHitRadius), 1, hitboxColor, false)
	}
}
