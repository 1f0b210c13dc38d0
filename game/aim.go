package game

import "math"

// PredictiveAim returns where a projectile of the given speed fired from
// shooter should be aimed to meet a target moving at constant velocity.
func PredictiveAim(shooter, target, targetVel Vec2, projectileSpeed float64) Vec2 {
	// If target is not moving, just return current position
	if math.Abs(targetVel[0]) < 0.1 && math.Abs(targetVel[1]) < 0.1 {
		return target
	}

	distance := Distance(shooter, target)
	if distance < 1.0 || projectileSpeed <= 0 {
		return target
	}

	// Solve distance(shooter, target + vel*t) = speed*t by fixed-point iteration,
	// starting from the time to reach the current position
	t := distance / projectileSpeed
	for i := 0; i < 5; i++ {
		predicted := target.Add(targetVel.Mul(t))
		newT := Distance(shooter, predicted) / projectileSpeed
		if math.Abs(newT-t) < 0.001 {
			break
		}
		t = newT
	}

	return target.Add(targetVel.Mul(t))
}

// AngleDiff returns the signed shortest rotation from current to target,
// normalized to [-π, π].
func AngleDiff(current, target float64) float64 {
	diff := target - current
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff < -math.Pi {
		diff += 2 * math.Pi
	}
	return diff
}
