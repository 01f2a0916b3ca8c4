package world

import "github.com/cookierampage/rampage/internal/grid"

// Rand is the random source used for food placement. *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// PlaceFood picks a uniformly random free cell. It samples (Intn(Width),
// Intn(Height)) and rejects occupied cells up to maxAttempts times, then
// falls back to a uniform pick over the enumerated free cells, so it never
// loops forever. A full arena yields ErrBoardFull.
func PlaceFood(rng Rand, arena grid.Arena, occupied grid.Occupancy, maxAttempts int) (grid.Position, error) {
	if maxAttempts <= 0 {
		maxAttempts = arena.Cells()
	}
	for i := 0; i < maxAttempts; i++ {
		p := grid.Position{X: rng.Intn(arena.Width), Y: rng.Intn(arena.Height)}
		if !occupied.Has(p) {
			return p, nil
		}
	}
	free := arena.Free(occupied)
	if len(free) == 0 {
		return grid.Position{}, ErrBoardFull
	}
	return free[rng.Intn(len(free))], nil
}
