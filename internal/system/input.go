package system

import (
	"time"

	coresys "github.com/cookierampage/rampage/internal/core/system"
	"github.com/cookierampage/rampage/internal/input"
	"github.com/cookierampage/rampage/internal/world"
	"go.uber.org/zap"
)

// InputSystem advances the debounce timer and commits the buffered
// direction request to the actor's heading. Phase 0 (Input).
type InputSystem struct {
	state  *world.State
	buffer *input.Buffer
	log    *zap.Logger
}

func NewInputSystem(state *world.State, buffer *input.Buffer, log *zap.Logger) *InputSystem {
	return &InputSystem{state: state, buffer: buffer, log: log}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(dt time.Duration) {
	s.buffer.Tick(dt)
	if s.state.Status != world.Running || len(s.state.Actor.Segments) == 0 {
		return
	}
	prev := s.state.Actor.Heading
	next, ok := s.buffer.Commit(prev)
	if !ok {
		return
	}
	s.state.Actor.Heading = next
	if next != prev {
		s.log.Debug("heading committed",
			zap.Stringer("from", prev),
			zap.Stringer("to", next),
		)
	}
}
