// Package gamemath holds small numeric helpers shared by the ability core.
package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// AtLeast returns v raised to floor. Used for terminal speeds on a Y-up
// axis, where falling faster means more negative.
func AtLeast(v, floor float64) float64 {
	if v < floor {
		return floor
	}
	return v
}
