package game

// Control is a logical input the simulation polls.
type Control int

const (
	ControlShoot Control = iota
	ControlShield
	ControlReverseBoost
	ControlSlowMo
	ControlMissile
	ControlLaser
	ControlTurnLeft
	ControlTurnRight
	ControlThrust
	ControlReverse

	// Shell-only controls, never read by the simulation itself.
	ControlStart
	ControlPause
	ControlMenu

	ControlCount
)

var controlNames = [...]string{
	ControlShoot:        "shoot",
	ControlShield:       "shield",
	ControlReverseBoost: "reverse-boost",
	ControlSlowMo:       "slow-mo",
	ControlMissile:      "missile",
	ControlLaser:        "laser",
	ControlTurnLeft:     "turn-left",
	ControlTurnRight:    "turn-right",
	ControlThrust:       "thrust",
	ControlReverse:      "reverse",
	ControlStart:        "start",
	ControlPause:        "pause",
	ControlMenu:         "menu",
}

func (c Control) String() string {
	if c >= 0 && int(c) < len(controlNames) {
		return controlNames[c]
	}
	return "unknown"
}

// Controls is polled by the simulation once per tick.
type Controls interface {
	// Held reports whether the control is currently down
	Held(c Control) bool

	// Pressed reports whether the control went down this tick
	Pressed(c Control) bool
}

// NoControls never reports any input.
type NoControls struct{}

func (NoControls) Held(Control) bool    { return false }
func (NoControls) Pressed(Control) bool { return false }

// Rand is the uniform random source used for spawns, drops and variants.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// randRange returns a uniform value in [lo, hi).
func randRange(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
