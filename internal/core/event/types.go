package event

import "github.com/cookierampage/rampage/internal/grid"

// CollisionCause says what the head ran into.
type CollisionCause uint8

const (
	HitWall CollisionCause = iota
	HitSelf
)

func (c CollisionCause) String() string {
	if c == HitWall {
		return "wall"
	}
	return "self"
}

// GrowthTriggered asks the growth stage to append one tail segment.
type GrowthTriggered struct{}

// CollisionDetected is emitted at most once per movement tick.
type CollisionDetected struct {
	Cause    CollisionCause
	Position grid.Position // head position after the move
}

// TerminationRequested is emitted once when the run ends.
type TerminationRequested struct {
	Length int
	Score  int
}

// FoodPlaced is informational: the spawner put food at Position.
type FoodPlaced struct {
	Position grid.Position
}

// FoodEaten is informational: the head consumed the food at Position.
type FoodEaten struct {
	Position grid.Position
	Score    int
}
