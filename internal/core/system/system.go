package system

import "time"

// Phase orders systems inside one frame. Stages of the movement tick are
// separate phases because each consumes what the previous one produced.
type Phase int

const (
	PhaseInput       Phase = iota // 0: debounce + commit pending direction
	PhaseMovement                 // 1: advance head, shift chain, detect collision
	PhaseEating                   // 2: head vs food
	PhaseGrowth                   // 3: append tail segment on growth trigger
	PhaseSpawn                    // 4: food placement
	PhaseTermination              // 5: tear down on collision
	PhaseCleanup                  // 6: destroy queued entities
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseMovement:
		return "movement"
	case PhaseEating:
		return "eating"
	case PhaseGrowth:
		return "growth"
	case PhaseSpawn:
		return "spawn"
	case PhaseTermination:
		return "termination"
	case PhaseCleanup:
		return "cleanup"
	}
	return "unknown"
}

// System is the interface every simulation stage implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
