package game

// Timer is a countdown with a ceiling, shared by every timed ability.
// Remaining always stays within [0, Max].
type Timer struct {
	Remaining float64
	Max       float64
}

// NewTimer returns a timer that starts ready (empty).
func NewTimer(max float64) Timer {
	return Timer{Max: max}
}

// FullTimer returns a timer that starts at its maximum.
func FullTimer(max float64) Timer {
	return Timer{Remaining: max, Max: max}
}

// Tick counts down by dt, stopping at zero.
func (t *Timer) Tick(dt float64) {
	t.Remaining -= dt
	if t.Remaining < 0 {
		t.Remaining = 0
	}
}

// Increase adds amount, stopping at Max.
func (t *Timer) Increase(amount float64) {
	t.Remaining += amount
	if t.Remaining > t.Max {
		t.Remaining = t.Max
	}
}

// Reset refills the timer to Max.
func (t *Timer) Reset() {
	t.Remaining = t.Max
}

// Set assigns a value clamped into [0, Max].
func (t *Timer) Set(value float64) {
	switch {
	case value < 0:
		t.Remaining = 0
	case value > t.Max:
		t.Remaining = t.Max
	default:
		t.Remaining = value
	}
}

// Ready reports whether the countdown has elapsed.
func (t Timer) Ready() bool {
	return t.Remaining <= 0
}

// Percent returns the remaining share of Max. Max must be positive.
func (t Timer) Percent() float64 {
	return t.Remaining / t.Max
}
