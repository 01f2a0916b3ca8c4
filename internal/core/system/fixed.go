package system

import "time"

// FixedStep runs an inner Runner once per elapsed period, independent of
// the frame rate. A long frame catches up with several steps, unless halt
// reports true, in which case the remaining steps of that frame are dropped.
type FixedStep struct {
	phase  Phase
	timer  *Timer
	runner *Runner
	halt   func() bool
	steps  uint64
}

func NewFixedStep(phase Phase, period time.Duration, halt func() bool, systems ...System) *FixedStep {
	r := NewRunner()
	for _, s := range systems {
		r.Register(s)
	}
	return &FixedStep{
		phase:  phase,
		timer:  NewTimer(period, true),
		runner: r,
		halt:   halt,
	}
}

func (f *FixedStep) Phase() Phase { return f.phase }

func (f *FixedStep) Update(dt time.Duration) {
	n := f.timer.Tick(dt)
	for i := 0; i < n; i++ {
		if f.halt != nil && f.halt() {
			return
		}
		f.runner.Tick(f.timer.Period())
		f.steps++
	}
}

// Steps returns how many fixed steps have run so far.
func (f *FixedStep) Steps() uint64 { return f.steps }
