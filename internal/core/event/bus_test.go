package event

import (
	"testing"

	"github.com/cookierampage/rampage/internal/grid"
)

func TestDrainConsumesOnce(t *testing.T) {
	q := NewQueue()
	Emit(q, GrowthTriggered{})
	if !Has[GrowthTriggered](q) {
		t.Fatal("expected pending GrowthTriggered")
	}
	if got := Drain[GrowthTriggered](q); len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got := Drain[GrowthTriggered](q); len(got) != 0 {
		t.Errorf("expected drained queue to be empty, got %d", len(got))
	}
	if Has[GrowthTriggered](q) {
		t.Error("expected Has to be false after drain")
	}
}

func TestDrainKeepsTypesApart(t *testing.T) {
	q := NewQueue()
	Emit(q, CollisionDetected{Cause: HitWall, Position: grid.Position{X: -1, Y: 3}})
	Emit(q, GrowthTriggered{})
	Emit(q, CollisionDetected{Cause: HitSelf})

	if got := Drain[GrowthTriggered](q); len(got) != 1 {
		t.Errorf("expected 1 growth event, got %d", len(got))
	}
	col := Drain[CollisionDetected](q)
	if len(col) != 2 {
		t.Fatalf("expected 2 collision events, got %d", len(col))
	}
	if col[0].Cause != HitWall || col[0].Position.X != -1 {
		t.Errorf("expected first collision to be the wall hit, got %+v", col[0])
	}
}

func TestResetDropsPendingEvents(t *testing.T) {
	q := NewQueue()
	Emit(q, GrowthTriggered{})
	q.Reset()
	if Has[GrowthTriggered](q) {
		t.Error("expected Reset to drop pending events")
	}
	calls := 0
	Subscribe(q, func(GrowthTriggered) { calls++ })
	q.Dispatch()
	if calls != 0 {
		t.Errorf("expected no dispatch after Reset, got %d", calls)
	}
}

func TestDispatchOrderAndDrainIndependence(t *testing.T) {
	q := NewQueue()
	var order []string
	Subscribe(q, func(FoodEaten) { order = append(order, "eaten") })
	Subscribe(q, func(ev TerminationRequested) { order = append(order, "terminated") })

	Emit(q, FoodEaten{Position: grid.Position{X: 1, Y: 1}})
	Emit(q, TerminationRequested{Length: 3})
	// Draining does not hide events from observers.
	Drain[FoodEaten](q)

	q.Dispatch()
	if len(order) != 2 || order[0] != "eaten" || order[1] != "terminated" {
		t.Errorf("expected [eaten terminated], got %v", order)
	}
	q.Dispatch()
	if len(order) != 2 {
		t.Errorf("expected Dispatch to deliver once, got %v", order)
	}
}

func TestCollisionCauseString(t *testing.T) {
	if HitWall.String() != "wall" || HitSelf.String() != "self" {
		t.Errorf("unexpected names %q %q", HitWall, HitSelf)
	}
}
