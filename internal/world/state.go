package world

import (
	"errors"
	"fmt"

	"github.com/cookierampage/rampage/internal/component"
	"github.com/cookierampage/rampage/internal/core/ecs"
	"github.com/cookierampage/rampage/internal/grid"
)

var (
	// ErrBoardFull is returned when no free cell is left for food.
	ErrBoardFull = errors.New("board full")
	// ErrNoActor marks an operation on an actor with no segments.
	ErrNoActor = errors.New("actor has no segments")
)

// Status is the run state of the simulation. Running -> Terminating ->
// Exited, never back.
type Status uint8

const (
	Running Status = iota
	Terminating
	Exited
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Terminating:
		return "terminating"
	case Exited:
		return "exited"
	}
	return "unknown"
}

// Actor is the ordered chain of segment handles, index 0 = head. The slice
// is the only thing defining chain order; segments never point at each other.
type Actor struct {
	Segments []ecs.EntityID
	Heading  grid.Direction // committed direction the head moves in
}

// TailSnapshot records where the tail was and which direction fell off the
// chain during the last movement tick. Growth appends a segment from it.
type TailSnapshot struct {
	Position  grid.Position
	Direction grid.Direction
	Valid     bool
}

// State is the whole simulation state. It is owned by the game loop
// goroutine and passed by pointer to every system; no locks.
type State struct {
	Arena grid.Arena
	ECS   *ecs.World

	Positions *ecs.Store[grid.Position]
	Segments  *ecs.Store[component.Segment]
	Heads     *ecs.Store[component.Head]
	Foods     *ecs.Store[component.Food]

	Actor    Actor
	LastTail TailSnapshot
	Status   Status
	Score    int
	Steps    uint64 // movement ticks completed

	food    ecs.EntityID
	hasFood bool
}

func NewState(arena grid.Arena) *State {
	w := ecs.NewWorld()
	reg := w.Registry()
	return &State{
		Arena:     arena,
		ECS:       w,
		Positions: ecs.NewRegisteredStore[grid.Position](reg),
		Segments:  ecs.NewRegisteredStore[component.Segment](reg),
		Heads:     ecs.NewRegisteredStore[component.Head](reg),
		Foods:     ecs.NewRegisteredStore[component.Food](reg),
	}
}

// SpawnActor creates the head at head facing dir, followed by length-1
// segments laid out behind it. Every body segment faces tailDir.
func (s *State) SpawnActor(head grid.Position, dir grid.Direction, length int, tailDir grid.Direction) error {
	if len(s.Actor.Segments) > 0 {
		return fmt.Errorf("spawn actor: already spawned with %d segments", len(s.Actor.Segments))
	}
	if length < 2 {
		return fmt.Errorf("spawn actor: length %d, need at least 2", length)
	}
	back := dir.Opposite()
	cells := make([]grid.Position, length)
	cells[0] = head
	for i := 1; i < length; i++ {
		cells[i] = cells[i-1].Add(back)
	}
	for _, c := range cells {
		if !s.Arena.Contains(c) {
			return fmt.Errorf("spawn actor: cell %v outside %dx%d arena", c, s.Arena.Width, s.Arena.Height)
		}
	}

	id := s.ECS.CreateEntity()
	s.Positions.Set(id, head)
	s.Segments.Set(id, component.Segment{Direction: dir})
	s.Heads.Set(id, component.Head{})
	s.Actor = Actor{Segments: []ecs.EntityID{id}, Heading: dir}
	for _, c := range cells[1:] {
		s.AppendSegment(c, tailDir)
	}
	return nil
}

// AppendSegment adds a new tail segment and returns its handle.
func (s *State) AppendSegment(pos grid.Position, dir grid.Direction) ecs.EntityID {
	id := s.ECS.CreateEntity()
	s.Positions.Set(id, pos)
	s.Segments.Set(id, component.Segment{Direction: dir})
	s.Actor.Segments = append(s.Actor.Segments, id)
	return id
}

// Length returns the number of segments, head included.
func (s *State) Length() int { return len(s.Actor.Segments) }

// HeadID returns the head handle. Panics when the chain is empty.
func (s *State) HeadID() ecs.EntityID {
	if len(s.Actor.Segments) == 0 {
		panic(ErrNoActor)
	}
	return s.Actor.Segments[0]
}

// HeadPosition returns the head's current cell. Panics when the chain is empty.
func (s *State) HeadPosition() grid.Position {
	return *s.Positions.MustGet(s.HeadID())
}

// Occupied returns the set of cells covered by actor segments.
func (s *State) Occupied() grid.Occupancy {
	occ := make(grid.Occupancy, s.Segments.Len())
	ecs.Each2(s.Segments, s.Positions, func(_ ecs.EntityID, _ *component.Segment, p *grid.Position) {
		occ.Add(*p)
	})
	return occ
}

// SpawnFood puts the food entity at p, replacing any existing food.
func (s *State) SpawnFood(p grid.Position) ecs.EntityID {
	s.RemoveFood()
	id := s.ECS.CreateEntity()
	s.Positions.Set(id, p)
	s.Foods.Set(id, component.Food{})
	s.food = id
	s.hasFood = true
	return id
}

// Food returns the food position, if food exists.
func (s *State) Food() (grid.Position, bool) {
	if !s.hasFood {
		return grid.Position{}, false
	}
	p, ok := s.Positions.Get(s.food)
	if !ok {
		return grid.Position{}, false
	}
	return *p, true
}

// FoodID returns the food handle, if food exists.
func (s *State) FoodID() (ecs.EntityID, bool) {
	return s.food, s.hasFood
}

// RemoveFood destroys the food entity immediately. No-op without food.
func (s *State) RemoveFood() {
	if !s.hasFood {
		return
	}
	s.ECS.Destroy(s.food)
	s.hasFood = false
}

// MarkAllForDestruction queues the food and every actor segment for the
// next cleanup flush.
func (s *State) MarkAllForDestruction() int {
	n := 0
	if s.hasFood {
		s.ECS.MarkForDestruction(s.food)
		s.hasFood = false
		n++
	}
	for _, id := range s.Actor.Segments {
		s.ECS.MarkForDestruction(id)
		n++
	}
	return n
}

// ReleaseActor forgets the chain once its entities are gone.
func (s *State) ReleaseActor() {
	s.Actor.Segments = nil
	s.LastTail = TailSnapshot{}
}
