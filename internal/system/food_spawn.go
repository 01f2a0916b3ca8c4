package system

import (
	"errors"
	"time"

	"github.com/cookierampage/rampage/internal/core/event"
	coresys "github.com/cookierampage/rampage/internal/core/system"
	"github.com/cookierampage/rampage/internal/world"
	"go.uber.org/zap"
)

// FoodSpawnSystem replaces the food on every food tick with a new one on a
// cell the actor does not cover. Phase 4 (Spawn), run inside the food
// fixed step.
type FoodSpawnSystem struct {
	state       *world.State
	queue       *event.Queue
	rng         world.Rand
	maxAttempts int
	log         *zap.Logger
}

func NewFoodSpawnSystem(state *world.State, queue *event.Queue, rng world.Rand, maxAttempts int, log *zap.Logger) *FoodSpawnSystem {
	return &FoodSpawnSystem{
		state:       state,
		queue:       queue,
		rng:         rng,
		maxAttempts: maxAttempts,
		log:         log,
	}
}

func (s *FoodSpawnSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }

func (s *FoodSpawnSystem) Update(_ time.Duration) {
	st := s.state
	if st.Status != world.Running {
		return
	}
	pos, err := world.PlaceFood(s.rng, st.Arena, st.Occupied(), s.maxAttempts)
	if err != nil {
		if errors.Is(err, world.ErrBoardFull) {
			s.log.Warn("no free cell for food", zap.Int("length", st.Length()))
			st.RemoveFood()
			return
		}
		s.log.Error("food placement failed", zap.Error(err))
		return
	}
	st.SpawnFood(pos)
	event.Emit(s.queue, event.FoodPlaced{Position: pos})
	s.log.Debug("food placed", zap.Stringer("pos", pos))
}
