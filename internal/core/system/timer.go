package system

import "time"

// Timer accumulates simulated time against a fixed period.
// A one-shot timer stays finished until Reset; a repeating timer wraps.
type Timer struct {
	period    time.Duration
	elapsed   time.Duration
	repeating bool
	justDone  int
}

func NewTimer(period time.Duration, repeating bool) *Timer {
	return &Timer{period: period, repeating: repeating}
}

// Tick advances the timer and returns how many periods completed.
func (t *Timer) Tick(dt time.Duration) int {
	t.justDone = 0
	if t.period <= 0 {
		return 0
	}
	if !t.repeating {
		if t.elapsed >= t.period {
			return 0
		}
		t.elapsed += dt
		if t.elapsed >= t.period {
			t.elapsed = t.period
			t.justDone = 1
		}
		return t.justDone
	}
	t.elapsed += dt
	for t.elapsed >= t.period {
		t.elapsed -= t.period
		t.justDone++
	}
	return t.justDone
}

// Finished reports whether a one-shot timer has run out. For a repeating
// timer it reports whether the last Tick completed a period.
func (t *Timer) Finished() bool {
	if t.repeating {
		return t.justDone > 0
	}
	return t.elapsed >= t.period
}

// JustFinished reports whether the last Tick completed at least one period.
func (t *Timer) JustFinished() bool { return t.justDone > 0 }

func (t *Timer) Reset() {
	t.elapsed = 0
	t.justDone = 0
}

func (t *Timer) Elapsed() time.Duration { return t.elapsed }
func (t *Timer) Period() time.Duration  { return t.period }
