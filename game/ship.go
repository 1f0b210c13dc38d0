package game

// TrailPoint is one sample of the ship's motion trail
type TrailPoint struct {
	Pos  Vec2
	Life float64
}

// Ship is the player's craft
type Ship struct {
	Pos Vec2
	Vel Vec2

	// Heading in radians; Dir is kept equal to (cos Rot, sin Rot)
	Rot float64
	Dir Vec2

	Lives int

	Invincible   Timer
	ShieldEnergy Timer
	SlowEnergy   Timer
	RapidFire    Timer
	ReverseBoost Timer

	ShieldActive  bool
	SlowActive    bool
	SlowAvailable bool

	Trail []TrailPoint
}

// NewShip creates a ship at the centre of the playfield with full energies
func NewShip(bounds Bounds) Ship {
	return Ship{
		Pos:           bounds.Center(),
		Dir:           FromAngle(0),
		Lives:         PlayerLives,
		Invincible:    NewTimer(InvincibleTime),
		ShieldEnergy:  FullTimer(MaxShieldTime),
		SlowEnergy:    FullTimer(MaxSlowTime),
		RapidFire:     NewTimer(RapidFireTime),
		ReverseBoost:  NewTimer(ReverseBoostTime),
		SlowAvailable: true,
		Trail:         make([]TrailPoint, 0, MaxTrailPoints),
	}
}

// Update advances abilities, movement and the trail by one tick
func (s *Ship) Update(dt float64, controls Controls, bounds Bounds) {
	s.Invincible.Tick(dt)
	s.RapidFire.Tick(dt)
	s.ReverseBoost.Tick(dt)

	s.updateShield(dt, controls)
	s.updateSlowTime(dt, controls)
	s.updateMovement(dt, controls, bounds)
	s.updateTrail(dt)
}

func (s *Ship) updateShield(dt float64, controls Controls) {
	s.ShieldActive = controls.Held(ControlShield) && s.ShieldEnergy.Remaining > AbilityEpsilon
	if s.ShieldActive {
		s.ShieldEnergy.Tick(dt * ShieldDrainRate)
	} else {
		s.ShieldEnergy.Increase(dt * ShieldRechargeRate)
	}
}

// updateSlowTime drains while active. Once drained empty, slow-time stays
// unavailable until energy recharges to SlowAvailableRatio of max.
func (s *Ship) updateSlowTime(dt float64, controls Controls) {
	s.SlowActive = controls.Held(ControlSlowMo) &&
		s.SlowEnergy.Remaining > AbilityEpsilon &&
		s.SlowAvailable

	if s.SlowActive {
		s.SlowEnergy.Tick(dt * SlowDrainRate)
		if s.SlowEnergy.Remaining <= 0 {
			s.SlowAvailable = false
		}
	} else if s.SlowEnergy.Remaining < s.SlowEnergy.Max {
		s.SlowEnergy.Increase(dt * SlowRechargeRate)
		if s.SlowEnergy.Remaining >= s.SlowEnergy.Max*SlowAvailableRatio {
			s.SlowAvailable = true
		}
	}
}

func (s *Ship) updateMovement(dt float64, controls Controls, bounds Bounds) {
	if controls.Held(ControlTurnLeft) {
		s.Rot -= TurnRate * dt
	}
	if controls.Held(ControlTurnRight) {
		s.Rot += TurnRate * dt
	}
	s.Dir = FromAngle(s.Rot)

	thrust := 0.0
	if controls.Held(ControlThrust) {
		thrust = ForwardThrust
	}
	if controls.Held(ControlReverse) {
		thrust = BackwardThrust
	}

	boost := 1.0
	if controls.Held(ControlReverseBoost) && !s.ShieldActive {
		s.ReverseBoost.Reset()
		boost = ReverseBoostFactor
	}

	if thrust < 0 {
		thrust *= boost
	}
	if thrust != 0 {
		s.Vel = s.Vel.Add(s.Dir.Mul(thrust * dt))
	}

	s.Vel = s.Vel.Mul(ShipDrag)
	s.Pos = s.Pos.Add(s.Vel.Mul(dt))
	s.Pos = V(wrap(s.Pos[0], bounds.Width), wrap(s.Pos[1], bounds.Height))
}

func (s *Ship) updateTrail(dt float64) {
	s.Trail = append(s.Trail, TrailPoint{Pos: s.Pos, Life: TrailLife})
	if len(s.Trail) > MaxTrailPoints {
		s.Trail = append(s.Trail[:0], s.Trail[len(s.Trail)-MaxTrailPoints:]...)
	}

	// Points are appended in age order, so expired ones form a prefix
	expired := 0
	for i := range s.Trail {
		s.Trail[i].Life -= dt
		if s.Trail[i].Life <= 0 {
			expired = i + 1
		}
	}
	if expired > 0 {
		s.Trail = append(s.Trail[:0], s.Trail[expired:]...)
	}
}

// SlowTimeFactor returns the time dilation applied to the next tick
func (s *Ship) SlowTimeFactor() float64 {
	if s.SlowActive {
		return SlowTimeFactor
	}
	return 1.0
}

// Vulnerable reports whether a hit would cost a life right now
func (s *Ship) Vulnerable() bool {
	return s.Invincible.Ready() && !s.ShieldActive
}

// TakeDamage removes a life and starts invincibility if the ship is vulnerable.
// It reports whether damage was applied.
func (s *Ship) TakeDamage() bool {
	if !s.Vulnerable() {
		return false
	}
	s.Lives--
	s.Invincible.Reset()
	return true
}

// ApplyPowerUp grants the effect of a collected power-up
func (s *Ship) ApplyPowerUp(kind PowerUpKind) {
	switch kind {
	case PowerUpShield:
		s.ShieldEnergy.Reset()
	case PowerUpLife:
		if s.Lives < MaxLives {
			s.Lives++
		}
	case PowerUpSlowTime:
		s.SlowEnergy.Reset()
		s.SlowAvailable = true
	case PowerUpRapidFire:
		s.RapidFire.Reset()
	}
}
