package session

// Effects lists the side effects a driver must perform after a transition.
// StopTimer must be handled before StartTimer.
type Effects struct {
	Load       bool
	StartTimer bool
	StopTimer  bool
}

// Plan derives the effects of moving from prev to next.
func Plan(prev, next State) Effects {
	var effects Effects
	if next.Status == StatusLoading && next.SessionID != prev.SessionID {
		effects.Load = true
	}
	prevTicking := prev.Ticking()
	nextTicking := next.Ticking()
	rearmed := prev.TimerID != next.TimerID
	if prevTicking && (!nextTicking || rearmed) {
		effects.StopTimer = true
	}
	if nextTicking && (!prevTicking || rearmed) {
		effects.StartTimer = true
	}
	return effects
}
