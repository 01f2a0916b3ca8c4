package system

import (
	"time"

	"github.com/cookierampage/rampage/internal/core/event"
	coresys "github.com/cookierampage/rampage/internal/core/system"
	"github.com/cookierampage/rampage/internal/world"
	"go.uber.org/zap"
)

// GrowthSystem appends one tail segment per GrowthTriggered, at the cell
// and facing the tail left behind on the last movement tick.
// Phase 3 (Growth).
type GrowthSystem struct {
	state *world.State
	queue *event.Queue
	log   *zap.Logger
}

func NewGrowthSystem(state *world.State, queue *event.Queue, log *zap.Logger) *GrowthSystem {
	return &GrowthSystem{state: state, queue: queue, log: log}
}

func (s *GrowthSystem) Phase() coresys.Phase { return coresys.PhaseGrowth }

func (s *GrowthSystem) Update(_ time.Duration) {
	triggers := event.Drain[event.GrowthTriggered](s.queue)
	if len(triggers) == 0 {
		return
	}
	st := s.state
	if st.Status != world.Running || len(st.Actor.Segments) == 0 {
		return
	}
	if !st.LastTail.Valid {
		s.log.Warn("growth without a tail snapshot, ignored", zap.Int("triggers", len(triggers)))
		return
	}
	for range triggers {
		st.AppendSegment(st.LastTail.Position, st.LastTail.Direction)
	}
	s.log.Debug("actor grew",
		zap.Int("length", st.Length()),
		zap.Stringer("tail", st.LastTail.Position),
	)
}
