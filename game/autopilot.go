package game

import "math"

// Autopilot tuning
const (
	autopilotDeadZone     = 0.1   // radians of aim error ignored
	autopilotFireCone     = 0.3   // radians of aim error within which it shoots
	autopilotCloseRange   = 120.0 // backs off inside this distance
	autopilotFarRange     = 250.0 // closes in beyond this distance
	autopilotDangerRadius = 60.0  // raises the shield for threats this close
	autopilotSwarmRadius  = 150.0
	autopilotSwarmBullets = 3
	autopilotBeamTargets  = 2
)

// Autopilot is a Controls implementation that plays the game from the
// simulation's own state. Call Update before each Step.
type Autopilot struct {
	held    [ControlCount]bool
	pressed [ControlCount]bool

	// Target is the aim point chosen on the last Update
	Target    Vec2
	HasTarget bool
}

// NewAutopilot creates an idle autopilot
func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

func (a *Autopilot) Held(c Control) bool {
	return c >= 0 && c < ControlCount && a.held[c]
}

func (a *Autopilot) Pressed(c Control) bool {
	return c >= 0 && c < ControlCount && a.pressed[c]
}

// Update decides the controls for the next tick
func (a *Autopilot) Update(sim *Simulation) {
	a.held = [ControlCount]bool{}
	a.pressed = [ControlCount]bool{}
	a.HasTarget = false

	ship := sim.Ship()
	targetPos, targetVel, ok := nearestThreat(ship.Pos, sim.Drones(), sim.Asteroids())
	if ok {
		a.Target = PredictiveAim(ship.Pos, targetPos, targetVel, BulletSpeed)
		a.HasTarget = true
		a.steer(ship, Distance(ship.Pos, targetPos))
	}

	if a.inDanger(ship, sim) {
		a.held[ControlShield] = true
	}
	if hostileBulletsNear(ship.Pos, sim.Bullets(), autopilotSwarmRadius) >= autopilotSwarmBullets {
		a.held[ControlSlowMo] = true
	}

	if sim.World().LiveDrones() > 0 {
		a.pressed[ControlMissile] = true
	}
	beam := Laser{Origin: ship.Pos, Dir: ship.Dir}
	if enemiesOnBeam(&beam, sim.Drones(), sim.Asteroids()) >= autopilotBeamTargets {
		a.pressed[ControlLaser] = true
	}
}

func (a *Autopilot) steer(ship *Ship, distance float64) {
	d := a.Target.Sub(ship.Pos)
	diff := AngleDiff(ship.Rot, math.Atan2(d[1], d[0]))

	switch {
	case diff > autopilotDeadZone:
		a.held[ControlTurnRight] = true
	case diff < -autopilotDeadZone:
		a.held[ControlTurnLeft] = true
	}

	switch {
	case distance > autopilotFarRange:
		a.held[ControlThrust] = true
	case distance < autopilotCloseRange:
		a.held[ControlReverse] = true
	}

	if math.Abs(diff) < autopilotFireCone {
		a.held[ControlShoot] = true
	}
}

func (a *Autopilot) inDanger(ship *Ship, sim *Simulation) bool {
	if !ship.Invincible.Ready() {
		return false
	}
	if hostileBulletsNear(ship.Pos, sim.Bullets(), autopilotDangerRadius) > 0 {
		return true
	}
	for _, as := range sim.Asteroids() {
		if !as.Destroyed() && Distance(ship.Pos, as.Pos) < as.Radius+autopilotDangerRadius {
			return true
		}
	}
	for _, d := range sim.Drones() {
		if !d.Dead() && Distance(ship.Pos, d.Pos) < autopilotDangerRadius {
			return true
		}
	}
	return false
}

// nearestThreat returns the closest live drone, or the closest live asteroid
// when no drone is alive.
func nearestThreat(pos Vec2, drones []Drone, asteroids []Asteroid) (Vec2, Vec2, bool) {
	best := math.Inf(1)
	var p, v Vec2
	found := false

	for _, d := range drones {
		if d.Dead() {
			continue
		}
		if dist := DistanceSq(pos, d.Pos); dist < best {
			best, p, v, found = dist, d.Pos, d.Vel, true
		}
	}
	if found {
		return p, v, true
	}

	for _, as := range asteroids {
		if as.Destroyed() {
			continue
		}
		if dist := DistanceSq(pos, as.Pos); dist < best {
			best, p, v, found = dist, as.Pos, as.Vel, true
		}
	}
	return p, v, found
}

func hostileBulletsNear(pos Vec2, bullets []Bullet, radius float64) int {
	n := 0
	for _, b := range bullets {
		if b.Hostile && Distance(pos, b.Pos) < radius {
			n++
		}
	}
	return n
}

func enemiesOnBeam(beam *Laser, drones []Drone, asteroids []Asteroid) int {
	n := 0
	for _, d := range drones {
		if !d.Dead() && beam.Covers(d.Pos, LaserDroneWidth) {
			n++
		}
	}
	for _, as := range asteroids {
		if !as.Destroyed() && beam.Covers(as.Pos, as.Radius+LaserRockPadding) {
			n++
		}
	}
	return n
}
