package system

import (
	"time"

	coresys "github.com/cookierampage/rampage/internal/core/system"
	"github.com/cookierampage/rampage/internal/world"
	"go.uber.org/zap"
)

// CleanupSystem flushes the deferred entity destruction queue at frame end
// and completes a pending termination. Phase 6 (Cleanup).
type CleanupSystem struct {
	state *world.State
	log   *zap.Logger
}

func NewCleanupSystem(state *world.State, log *zap.Logger) *CleanupSystem {
	return &CleanupSystem{state: state, log: log}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	n := s.state.ECS.FlushDestroyQueue()
	if s.state.Status != world.Terminating {
		return
	}
	s.state.ReleaseActor()
	s.state.Status = world.Exited
	s.log.Debug("teardown complete", zap.Int("destroyed", n))
}
