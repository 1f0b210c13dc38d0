package game

import "image/color"

// DroneKind defines different drone behaviours
type DroneKind int

const (
	DroneSniper   DroneKind = iota // Hovers down slowly and leads its shots
	DroneKamikaze                  // Chases the ship, never fires
	DroneBomber                    // Tracks the ship horizontally and drops bombs
	droneKindCount
)

func (k DroneKind) String() string {
	switch k {
	case DroneSniper:
		return "sniper"
	case DroneKamikaze:
		return "kamikaze"
	case DroneBomber:
		return "bomber"
	default:
		return "unknown"
	}
}

// DroneKindConfig holds movement and firing parameters for a drone kind
type DroneKindConfig struct {
	Kind  DroneKind
	Color color.RGBA

	// Movement
	DescentSpeed    float64 // constant downward speed, pixels per second
	HorizontalSpeed float64 // speed toward the ship's column (bomber)
	ChaseSpeed      float64 // target speed toward the ship (kamikaze)
	ChaseBlend      float64 // per-tick velocity blend toward the chase vector

	// Firing (FireInterval 0 means the kind never fires)
	FireInterval float64
	BulletSpeed  float64
	BulletSize   float64
	BulletLife   float64
	LeadTime     float64 // seconds of ship velocity to lead by
}

// GetDroneKindConfig returns the configuration for a drone kind
func GetDroneKindConfig(kind DroneKind) DroneKindConfig {
	switch kind {
	case DroneSniper:
		return DroneKindConfig{
			Kind:         DroneSniper,
			Color:        ColorRed,
			DescentSpeed: 20.0,
			FireInterval: 2.5,
			BulletSpeed:  400.0,
			BulletSize:   4.0,
			BulletLife:   3.0,
			LeadTime:     0.3,
		}
	case DroneKamikaze:
		return DroneKindConfig{
			Kind:       DroneKamikaze,
			Color:      ColorOrange,
			ChaseSpeed: 40.0,
			ChaseBlend: 0.1,
		}
	case DroneBomber:
		return DroneKindConfig{
			Kind:            DroneBomber,
			Color:           ColorPurple,
			DescentSpeed:    30.0,
			HorizontalSpeed: 80.0,
			FireInterval:    3.0,
			BulletSpeed:     150.0,
			BulletSize:      6.0,
			BulletLife:      3.0,
		}
	default:
		return GetDroneKindConfig(DroneKamikaze)
	}
}

// RandomDroneKind picks a drone kind uniformly
func RandomDroneKind(rng Rand) DroneKind {
	return DroneKind(rng.Intn(int(droneKindCount)))
}
