package input

import (
	"time"

	"github.com/cookierampage/rampage/internal/core/system"
	"github.com/cookierampage/rampage/internal/grid"
)

// Buffer holds the most recent direction request and gates how often a
// request may become the actor's committed heading.
//
// Input arrives far more often than the actor moves, so requests overwrite
// each other (latest wins, no queue) and a commit is only possible once the
// debounce period has elapsed since the previous commit. A request for the
// exact reverse of the current heading is never committed: it would drive
// the head straight into the first body segment.
type Buffer struct {
	pending  grid.Direction
	has      bool
	debounce *system.Timer
}

// NewBuffer starts with initial pending and the debounce timer at zero, so
// the first commit is possible after one full debounce period.
func NewBuffer(debounce time.Duration, initial grid.Direction) *Buffer {
	return &Buffer{
		pending:  initial,
		has:      true,
		debounce: system.NewTimer(debounce, false),
	}
}

// Submit records a request, replacing any uncommitted one.
func (b *Buffer) Submit(d grid.Direction) {
	b.pending = d
	b.has = true
}

// Tick advances the debounce timer.
func (b *Buffer) Tick(dt time.Duration) {
	b.debounce.Tick(dt)
}

// Commit returns the pending request and rearms the debounce timer when
// the request is not the reverse of current and the debounce period has
// elapsed. Otherwise it returns current and false.
func (b *Buffer) Commit(current grid.Direction) (grid.Direction, bool) {
	if !b.has || !b.debounce.Finished() {
		return current, false
	}
	if b.pending == current.Opposite() {
		return current, false
	}
	b.debounce.Reset()
	return b.pending, true
}

// Pending returns the latest request.
func (b *Buffer) Pending() (grid.Direction, bool) {
	return b.pending, b.has
}

// Ready reports whether the debounce period has elapsed.
func (b *Buffer) Ready() bool {
	return b.debounce.Finished()
}
