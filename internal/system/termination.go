package system

import (
	"time"

	"github.com/cookierampage/rampage/internal/core/event"
	coresys "github.com/cookierampage/rampage/internal/core/system"
	"github.com/cookierampage/rampage/internal/world"
	"go.uber.org/zap"
)

// TerminationSystem ends the run on the first collision: it queues every
// entity for destruction and emits TerminationRequested once.
// Phase 5 (Termination).
type TerminationSystem struct {
	state *world.State
	queue *event.Queue
	log   *zap.Logger
}

func NewTerminationSystem(state *world.State, queue *event.Queue, log *zap.Logger) *TerminationSystem {
	return &TerminationSystem{state: state, queue: queue, log: log}
}

func (s *TerminationSystem) Phase() coresys.Phase { return coresys.PhaseTermination }

func (s *TerminationSystem) Update(_ time.Duration) {
	hits := event.Drain[event.CollisionDetected](s.queue)
	if len(hits) == 0 {
		return
	}
	st := s.state
	if st.Status != world.Running {
		return
	}
	hit := hits[0]
	length := st.Length()
	marked := st.MarkAllForDestruction()
	st.Status = world.Terminating
	event.Emit(s.queue, event.TerminationRequested{Length: length, Score: st.Score})

	s.log.Info("game over",
		zap.Stringer("cause", hit.Cause),
		zap.Stringer("pos", hit.Position),
		zap.Int("length", length),
		zap.Int("score", st.Score),
		zap.Uint64("steps", st.Steps),
		zap.Int("despawned", marked),
	)
}
