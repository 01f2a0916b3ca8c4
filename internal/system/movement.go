package system

import (
	"fmt"
	"time"

	"github.com/cookierampage/rampage/internal/core/event"
	coresys "github.com/cookierampage/rampage/internal/core/system"
	"github.com/cookierampage/rampage/internal/grid"
	"github.com/cookierampage/rampage/internal/world"
	"go.uber.org/zap"
)

// MovementSystem advances the actor one cell per movement tick.
// Phase 1 (Movement), run inside the movement fixed step.
//
// Positions shift one slot toward the tail: segment i takes the cell
// segment i-1 held before the move, and the head takes the new cell.
// The head and segment 1 both take the committed heading; from segment 2
// on, each takes the facing segment i-1 had before the move. Whatever
// falls off the tail end is kept in State.LastTail for the growth stage.
type MovementSystem struct {
	state *world.State
	queue *event.Queue
	log   *zap.Logger

	prior []grid.Position // reused between ticks
}

func NewMovementSystem(state *world.State, queue *event.Queue, log *zap.Logger) *MovementSystem {
	return &MovementSystem{state: state, queue: queue, log: log}
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseMovement }

func (s *MovementSystem) Update(_ time.Duration) {
	st := s.state
	if st.Status != world.Running {
		return
	}
	// The actor is already doomed this frame; moving again would report a
	// second collision.
	if event.Has[event.CollisionDetected](s.queue) {
		return
	}
	segs := st.Actor.Segments
	if len(segs) == 0 {
		panic(fmt.Errorf("movement tick: %w", world.ErrNoActor))
	}

	s.prior = s.prior[:0]
	for _, id := range segs {
		s.prior = append(s.prior, *st.Positions.MustGet(id))
	}

	heading := st.Actor.Heading
	head := s.prior[0].Add(heading)

	switch {
	case !st.Arena.Contains(head):
		event.Emit(s.queue, event.CollisionDetected{Cause: event.HitWall, Position: head})
	case hits(s.prior, head):
		event.Emit(s.queue, event.CollisionDetected{Cause: event.HitSelf, Position: head})
	}

	st.Segments.MustGet(segs[0]).Direction = heading
	carry := heading
	for _, id := range segs[1:] {
		seg := st.Segments.MustGet(id)
		carry, seg.Direction = seg.Direction, carry
	}

	*st.Positions.MustGet(segs[0]) = head
	for i := 1; i < len(segs); i++ {
		*st.Positions.MustGet(segs[i]) = s.prior[i-1]
	}

	st.LastTail = world.TailSnapshot{
		Position:  s.prior[len(s.prior)-1],
		Direction: carry,
		Valid:     true,
	}
	st.Steps++
}

func hits(cells []grid.Position, p grid.Position) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}
