package grid

// Arena is the bounded rectangle [0, Width) x [0, Height).
// There is no wraparound: anything outside is a wall.
type Arena struct {
	Width  int
	Height int
}

func NewArena(width, height int) Arena {
	return Arena{Width: width, Height: height}
}

// Contains reports whether p lies inside the arena.
func (a Arena) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < a.Width && p.Y < a.Height
}

// Cells returns the number of cells in the arena.
func (a Arena) Cells() int {
	return a.Width * a.Height
}

// Occupancy is a set of occupied cells.
type Occupancy map[Position]struct{}

func NewOccupancy(cells ...Position) Occupancy {
	o := make(Occupancy, len(cells))
	for _, c := range cells {
		o[c] = struct{}{}
	}
	return o
}

func (o Occupancy) Add(p Position) { o[p] = struct{}{} }

func (o Occupancy) Has(p Position) bool {
	_, ok := o[p]
	return ok
}

// Free returns every arena cell not in o, scanning rows bottom to top.
func (a Arena) Free(o Occupancy) []Position {
	free := make([]Position, 0, a.Cells()-len(o))
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			p := Position{X: x, Y: y}
			if !o.Has(p) {
				free = append(free, p)
			}
		}
	}
	return free
}
