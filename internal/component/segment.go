package component

import "github.com/cookierampage/rampage/internal/grid"

// Segment is one body unit of the actor. Direction is the way the unit
// faces; the renderer orients its glyph by it and movement shifts it one
// slot down the chain each tick.
// Pure data: all mutation happens in systems.
type Segment struct {
	Direction grid.Direction
}

// Head tags the first segment of the chain.
type Head struct{}
