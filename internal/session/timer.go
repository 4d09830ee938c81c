package session

import "time"

// Step is the countdown resolution. The countdown is kept as an integer
// number of steps so repeated decrements never drift.
const Step = 100 * time.Millisecond

const stepsPerSecond = int(time.Second / Step)

// tenthsFor converts a limit to the nearest whole number of steps, falling
// back to DefaultTimeLimit.
func tenthsFor(limit time.Duration) int {
	if limit <= 0 {
		limit = DefaultTimeLimit
	}
	steps := int((limit + Step/2) / Step)
	if steps < 1 {
		steps = 1
	}
	return steps
}

// countDown removes one step, clamped at zero.
func countDown(steps int) int {
	if steps <= 0 {
		return 0
	}
	return steps - 1
}

// seconds converts steps to seconds.
func seconds(steps int) float64 {
	return float64(steps) / float64(stepsPerSecond)
}
