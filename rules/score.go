package rules

const (
	// MinSpeed is the slowest supported speed setting.
	MinSpeed = 1
	// MaxSpeed is the fastest supported speed setting.
	MaxSpeed = 199
	// baseInterval minus the speed setting is the tick interval in
	// milliseconds.
	baseInterval = 200
)

// IntervalForSpeed converts a speed setting into a tick interval in
// milliseconds. Smaller intervals mean a faster game.
func IntervalForSpeed(speed int) int {
	return baseInterval - speed
}

// DisplayScore scales a base score by the speed multiplier of the given tick
// interval, (200 - interval) / 100, rounding half up.
func DisplayScore(baseScore, interval int) int {
	return roundHundredths(baseScore * (baseInterval - interval))
}

// roundHundredths divides a non-negative fixed point value with two decimal
// places by 100, rounding half up.
func roundHundredths(v int) int {
	return (v + 50) / 100
}

// SpeedForInterval is the inverse of IntervalForSpeed.
func SpeedForInterval(interval int) int {
	return baseInterval - interval
}
