package system

import (
	"time"

	"github.com/cookierampage/rampage/internal/core/event"
	coresys "github.com/cookierampage/rampage/internal/core/system"
	"github.com/cookierampage/rampage/internal/scripting"
	"github.com/cookierampage/rampage/internal/world"
	"go.uber.org/zap"
)

// Scorer prices one eaten food. *scripting.Engine satisfies it.
type Scorer interface {
	FoodScore(ctx scripting.ScoreContext) int
}

// EatingSystem checks the head against the food after every movement tick.
// Phase 2 (Eating).
type EatingSystem struct {
	state  *world.State
	queue  *event.Queue
	scorer Scorer
	log    *zap.Logger
}

func NewEatingSystem(state *world.State, queue *event.Queue, scorer Scorer, log *zap.Logger) *EatingSystem {
	return &EatingSystem{state: state, queue: queue, scorer: scorer, log: log}
}

func (s *EatingSystem) Phase() coresys.Phase { return coresys.PhaseEating }

func (s *EatingSystem) Update(_ time.Duration) {
	st := s.state
	if st.Status != world.Running || len(st.Actor.Segments) == 0 {
		return
	}
	food, ok := st.Food()
	if !ok || st.HeadPosition() != food {
		return
	}

	st.RemoveFood()
	points := 1
	if s.scorer != nil {
		points = s.scorer.FoodScore(scripting.ScoreContext{
			Length: st.Length(),
			Score:  st.Score,
			Steps:  st.Steps,
		})
	}
	st.Score += points

	event.Emit(s.queue, event.GrowthTriggered{})
	event.Emit(s.queue, event.FoodEaten{Position: food, Score: st.Score})
	s.log.Debug("food eaten",
		zap.Stringer("pos", food),
		zap.Int("points", points),
		zap.Int("score", st.Score),
	)
}
