// Package game wires the simulation stages into a single frame-driven
// façade. Everything here runs on the caller's goroutine.
package game

import (
	"fmt"
	"time"

	"github.com/cookierampage/rampage/internal/config"
	"github.com/cookierampage/rampage/internal/core/event"
	coresys "github.com/cookierampage/rampage/internal/core/system"
	"github.com/cookierampage/rampage/internal/grid"
	"github.com/cookierampage/rampage/internal/input"
	"github.com/cookierampage/rampage/internal/system"
	"github.com/cookierampage/rampage/internal/world"
	"go.uber.org/zap"
)

// Game owns the simulation state and the ordered stages that advance it.
//
// Frame order:
//
//	input commit -> [movement -> eating -> growth] every movement step
//	-> [food spawn] every food step -> termination -> cleanup -> observers
type Game struct {
	state  *world.State
	queue  *event.Queue
	buffer *input.Buffer
	runner *coresys.Runner

	movement *coresys.FixedStep
	food     *coresys.FixedStep

	log    *zap.Logger
	frames uint64
}

// New spawns the actor described by cfg and assembles the stages. scorer
// may be nil, in which case every food is worth one point.
func New(cfg *config.Config, rng world.Rand, scorer system.Scorer, log *zap.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	st := world.NewState(cfg.ArenaGrid())
	head := grid.Position{X: cfg.Spawn.X, Y: cfg.Spawn.Y}
	if err := st.SpawnActor(head, cfg.Spawn.Direction, cfg.Spawn.Length, cfg.Spawn.TailDirection); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		state:  st,
		queue:  event.NewQueue(),
		buffer: input.NewBuffer(cfg.Timing.Debounce.Duration, cfg.Spawn.Direction),
		runner: coresys.NewRunner(),
		log:    log,
	}

	g.movement = coresys.NewFixedStep(coresys.PhaseMovement, cfg.Timing.MovementStep.Duration, g.halted,
		system.NewMovementSystem(st, g.queue, log),
		system.NewEatingSystem(st, g.queue, scorer, log),
		system.NewGrowthSystem(st, g.queue, log),
	)
	g.food = coresys.NewFixedStep(coresys.PhaseSpawn, cfg.Timing.FoodStep.Duration, g.halted,
		system.NewFoodSpawnSystem(st, g.queue, rng, cfg.Food.MaxAttempts, log),
	)

	g.runner.Register(system.NewInputSystem(st, g.buffer, log))
	g.runner.Register(g.movement)
	g.runner.Register(g.food)
	g.runner.Register(system.NewTerminationSystem(st, g.queue, log))
	g.runner.Register(system.NewCleanupSystem(st, log))

	log.Info("game ready",
		zap.Int("width", cfg.Arena.Width),
		zap.Int("height", cfg.Arena.Height),
		zap.Stringer("spawn", head),
		zap.Stringer("heading", cfg.Spawn.Direction),
		zap.Int("length", cfg.Spawn.Length),
		zap.Int("systems", g.runner.Len()),
	)
	return g, nil
}

func (g *Game) halted() bool {
	return g.state.Status != world.Running || event.Has[event.CollisionDetected](g.queue)
}

// Submit buffers a direction request. Latest request wins.
func (g *Game) Submit(d grid.Direction) {
	g.buffer.Submit(d)
}

// Frame advances the simulation by dt and then notifies observers of
// everything that happened during the frame. No-op once exited.
func (g *Game) Frame(dt time.Duration) {
	if g.state.Status == world.Exited {
		return
	}
	g.queue.Reset()
	g.runner.Tick(dt)
	g.frames++
	g.queue.Dispatch()
}

// Snapshot copies the current state for presentation.
func (g *Game) Snapshot() world.Snapshot { return g.state.Snapshot() }

// Status returns the run state.
func (g *Game) Status() world.Status { return g.state.Status }

// Terminated reports whether the run has ended.
func (g *Game) Terminated() bool { return g.state.Status != world.Running }

// Bus returns the event queue; observers attach with event.Subscribe.
func (g *Game) Bus() *event.Queue { return g.queue }

// Frames returns how many frames have been simulated.
func (g *Game) Frames() uint64 { return g.frames }

// MovementSteps returns how many movement steps have run.
func (g *Game) MovementSteps() uint64 { return g.movement.Steps() }
