package game

import (
	"log"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Simulation is the aggregate game state advanced one tick at a time
type Simulation struct {
	config   Config
	viewport Viewport
	controls Controls
	rng      Rand
	logger   *log.Logger

	// Session identity, renewed on every Reset
	sessionID uuid.UUID

	// Game over flag; Step is a no-op once set
	over bool

	// Seconds of simulated time since the last Reset
	elapsed float64

	tally     Tally
	highScore int
	waves     WaveDirector

	ship    Ship
	world   *World
	weapons WeaponSystem
	shake   ScreenShake
	events  *EventQueue
}

// NewSimulation validates cfg and creates a simulation ready to play
func NewSimulation(cfg Config, controls Controls, rng Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if rng == nil {
		return nil, errors.New("random source is required")
	}
	if controls == nil {
		controls = NoControls{}
	}

	s := &Simulation{
		config:   cfg,
		viewport: ViewportOf(cfg),
		controls: controls,
		rng:      rng,
		logger:   cfg.logger(),
		world:    NewWorld(),
		events:   NewEventQueue(),
	}
	s.Reset()
	return s, nil
}

// SetViewport replaces the screen-size source, e.g. with the window layout
func (s *Simulation) SetViewport(v Viewport) {
	s.viewport = v
}

// SetControls replaces the input source
func (s *Simulation) SetControls(c Controls) {
	s.controls = c
}

// Reset starts a new session. The high score survives.
func (s *Simulation) Reset() {
	bounds := BoundsOf(s.viewport)

	s.sessionID = uuid.New()
	s.over = false
	s.elapsed = 0
	s.tally = NewTally()
	s.waves = NewWaveDirector()
	s.ship = NewShip(bounds)
	s.world.Clear()
	s.weapons = NewWeaponSystem()
	s.shake = ScreenShake{}
	s.events.Clear()

	s.logger.Printf("session %s started (%.0fx%.0f)", s.sessionID, bounds.Width, bounds.Height)
}

// Advance steps the simulation by a wall-clock delta, dilated by slow-time.
// The dilation comes from the previous tick's slow-time state.
func (s *Simulation) Advance(realDt float64) {
	s.Step(realDt * s.ship.SlowTimeFactor())
}

// Step advances the game by dt seconds of game time
func (s *Simulation) Step(dt float64) {
	if s.over {
		return
	}
	bounds := BoundsOf(s.viewport)
	ctx := s.newPassContext()

	s.elapsed += dt
	s.tally.ComboTimer.Tick(dt)
	if s.tally.ComboTimer.Ready() {
		s.tally.Combo = 0
	}

	s.ship.Update(dt, s.controls, bounds)
	s.weapons.Update(dt, &s.ship, s.controls, &s.world.Bullets, s.events)

	s.updateEntities(dt, ctx)
	s.handleCollisions(ctx)

	if s.waves.checkCompletion(bounds, ctx) {
		s.logger.Printf("session %s: wave %d reached, score %d", s.sessionID, s.waves.Wave, s.tally.Score)
	}
	s.waves.spawn(s.world, bounds, s.rng)

	s.cleanup(bounds)
	s.shake.Update(dt)

	if s.over {
		if s.tally.Score > s.highScore {
			s.highScore = s.tally.Score
		}
		s.logger.Printf("session %s over: score %d, wave %d, %.1fs", s.sessionID, s.tally.Score, s.waves.Wave, s.elapsed)
	}
}

func (s *Simulation) newPassContext() *passContext {
	return &passContext{
		tally:  &s.tally,
		events: s.events,
		shake:  &s.shake,
		rng:    s.rng,
		drops:  &s.world.PowerUps,
		over:   &s.over,
	}
}

func (s *Simulation) updateEntities(dt float64, ctx *passContext) {
	w := s.world

	for i := range w.Asteroids {
		w.Asteroids[i].Update(dt)
	}

	for i := range w.Drones {
		d := &w.Drones[i]
		d.Update(dt, s.ship.Pos)
		if b, ok := d.Fire(s.ship.Pos, s.ship.Vel); ok {
			w.Bullets = append(w.Bullets, b)
		}
	}

	s.weapons.updateMissiles(dt, w.Drones, w.Asteroids, ctx)
	s.weapons.applyLaser(w.Drones, w.Asteroids, ctx)

	for i := range w.Bullets {
		w.Bullets[i].Update(dt)
	}
	for i := range w.PowerUps {
		w.PowerUps[i].Update(dt)
	}
}

// handleCollisions runs the five resolution passes in order
func (s *Simulation) handleCollisions(ctx *passContext) {
	w := s.world
	resolveFriendlyBullets(&w.Bullets, w.Asteroids, w.Drones, ctx)
	resolveHostileBullets(&w.Bullets, &s.ship, ctx)
	resolveShipAsteroids(w.Asteroids, &s.ship, ctx)
	resolveShipDrones(w.Drones, w.Asteroids, &s.ship, ctx)
	resolvePowerUps(&w.PowerUps, &s.ship, ctx)
}

func (s *Simulation) cleanup(bounds Bounds) {
	s.world.Cleanup(bounds)

	missiles := s.weapons.Missiles[:0]
	for _, m := range s.weapons.Missiles {
		if m.Alive(bounds) {
			missiles = append(missiles, m)
		}
	}
	s.weapons.Missiles = missiles
}

// Snapshot is a plain copy of the counters and ship state
type Snapshot struct {
	SessionID string  `msgpack:"session"`
	Elapsed   float64 `msgpack:"elapsed"`
	Score     int     `msgpack:"score"`
	HighScore int     `msgpack:"high_score"`
	Combo     int     `msgpack:"combo"`
	Wave      int     `msgpack:"wave"`
	Kills     int     `msgpack:"kills"`
	Required  int     `msgpack:"required"`
	Over      bool    `msgpack:"over"`

	ShipX        float64 `msgpack:"ship_x"`
	ShipY        float64 `msgpack:"ship_y"`
	ShipRot      float64 `msgpack:"ship_rot"`
	Lives        int     `msgpack:"lives"`
	Shield       float64 `msgpack:"shield"`
	SlowTime     float64 `msgpack:"slow_time"`
	RapidFire    float64 `msgpack:"rapid_fire"`
	MissileAmmo  int     `msgpack:"missile_ammo"`
	LaserActive  bool    `msgpack:"laser_active"`
	LaserReady   float64 `msgpack:"laser_ready"`
	ShieldActive bool    `msgpack:"shield_active"`
	SlowActive   bool    `msgpack:"slow_active"`

	Asteroids int `msgpack:"asteroids"`
	Drones    int `msgpack:"drones"`
	Bullets   int `msgpack:"bullets"`
	PowerUps  int `msgpack:"power_ups"`
	Missiles  int `msgpack:"missiles"`
}

// Snapshot copies the current counters
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		SessionID: s.sessionID.String(),
		Elapsed:   s.elapsed,
		Score:     s.tally.Score,
		HighScore: s.highScore,
		Combo:     s.tally.Combo,
		Wave:      s.waves.Wave,
		Kills:     s.tally.Kills,
		Required:  s.waves.EnemiesToSpawn,
		Over:      s.over,

		ShipX:        s.ship.Pos[0],
		ShipY:        s.ship.Pos[1],
		ShipRot:      s.ship.Rot,
		Lives:        s.ship.Lives,
		Shield:       s.ship.ShieldEnergy.Percent(),
		SlowTime:     s.ship.SlowEnergy.Percent(),
		RapidFire:    s.ship.RapidFire.Percent(),
		MissileAmmo:  s.weapons.MissileAmmo,
		LaserActive:  s.weapons.Laser.Active,
		LaserReady:   1 - s.weapons.Laser.Cooldown.Percent(),
		ShieldActive: s.ship.ShieldActive,
		SlowActive:   s.ship.SlowActive,

		Asteroids: len(s.world.Asteroids),
		Drones:    len(s.world.Drones),
		Bullets:   len(s.world.Bullets),
		PowerUps:  len(s.world.PowerUps),
		Missiles:  len(s.weapons.Missiles),
	}
}

func (s *Simulation) Ship() *Ship { return &s.ship }
func (s *Simulation) World() *World { return s.world }
func (s *Simulation) Asteroids() []Asteroid { return s.world.Asteroids }
func (s *Simulation) Drones() []Drone { return s.world.Drones }
func (s *Simulation) Bullets() []Bullet { return s.world.Bullets }
func (s *Simulation) PowerUps() []PowerUp { return s.world.PowerUps }
func (s *Simulation) Missiles() []Missile { return s.weapons.Missiles }
func (s *Simulation) Weapons() *WeaponSystem { return &s.weapons }
func (s *Simulation) Laser() *Laser { return &s.weapons.Laser }
func (s *Simulation) Score() int { return s.tally.Score }
func (s *Simulation) HighScore() int { return s.highScore }
func (s *Simulation) Combo() int { return s.tally.Combo }
func (s *Simulation) Wave() int { return s.waves.Wave }
func (s *Simulation) Kills() int { return s.tally.Kills }
func (s *Simulation) Required() int { return s.waves.EnemiesToSpawn }
func (s *Simulation) Elapsed() float64 { return s.elapsed }
func (s *Simulation) Events() *EventQueue { return s.events }
func (s *Simulation) Shake() *ScreenShake { return &s.shake }
func (s *Simulation) Over() bool { return s.over }
func (s *Simulation) SessionID() uuid.UUID { return s.sessionID }
func (s *Simulation) Bounds() Bounds { return BoundsOf(s.viewport) }
func (s *Simulation) Config() Config { return s.config }
func (s *Simulation) Difficulty() float64 { return s.waves.Difficulty() }
