package world

import "github.com/cookierampage/rampage/internal/grid"

// SegmentView is the read-only view of one segment for presentation.
type SegmentView struct {
	Position  grid.Position
	Direction grid.Direction
	Head      bool
}

// Snapshot is a copy of everything a renderer needs. It shares no memory
// with the State.
type Snapshot struct {
	Arena    grid.Arena
	Segments []SegmentView // chain order, head first
	Food     grid.Position
	HasFood  bool
	Score    int
	Status   Status
	Steps    uint64
}

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Arena:    s.Arena,
		Segments: make([]SegmentView, 0, len(s.Actor.Segments)),
		Score:    s.Score,
		Status:   s.Status,
		Steps:    s.Steps,
	}
	for i, id := range s.Actor.Segments {
		pos, ok := s.Positions.Get(id)
		if !ok {
			continue
		}
		seg, _ := s.Segments.Get(id)
		v := SegmentView{Position: *pos, Head: i == 0}
		if seg != nil {
			v.Direction = seg.Direction
		}
		snap.Segments = append(snap.Segments, v)
	}
	snap.Food, snap.HasFood = s.Food()
	return snap
}

// Length returns the number of segments in the snapshot.
func (s Snapshot) Length() int { return len(s.Segments) }
